package auth

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	Init("test-secret")

	token, err := GenerateToken("user-1", "jane")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != "user-1" || claims.Username != "jane" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	Init("test-secret")
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Error("garbage token validated")
	}
}

func TestValidateRejectsForeignKey(t *testing.T) {
	Init("secret-a")
	token, err := GenerateToken("user-1", "jane")
	if err != nil {
		t.Fatal(err)
	}

	Init("secret-b")
	if _, err := ValidateToken(token); err == nil {
		t.Error("token signed with another key validated")
	}
}
