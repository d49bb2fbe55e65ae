package profile

import (
	"context"
	"testing"

	"zysculpt/internal/models"
	"zysculpt/internal/storage"
)

func TestSignInMergesRemoteOverHints(t *testing.T) {
	mem := storage.NewMemory()
	ctx := context.Background()
	if err := mem.UpsertProfile(ctx, "u1", models.UserProfile{FullName: "Remote Name", Voice: "en-GB-News-K"}); err != nil {
		t.Fatal(err)
	}

	store := NewStore(mem)
	got := store.SignIn(ctx, "u1", models.UserProfile{FullName: "Hint Name"})

	if got.FullName != "Remote Name" {
		t.Errorf("fullName = %q, remote must win over the hint", got.FullName)
	}
	if got.Voice != "en-GB-News-K" {
		t.Errorf("voice = %q", got.Voice)
	}
	if got.DailyAvailability != 2 {
		t.Errorf("dailyAvailability = %d, want default 2", got.DailyAvailability)
	}
}

func TestSignInFallsBackToHints(t *testing.T) {
	store := NewStore(nil)
	got := store.SignIn(context.Background(), "u1", models.UserProfile{FullName: "Hint Name"})
	if got.FullName != "Hint Name" {
		t.Errorf("fullName = %q, want the hint", got.FullName)
	}
}

func TestUpdateField(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr bool
	}{
		{"full name", "fullName", "Jane Doe", false},
		{"linkedIn", "linkedIn", "linkedin.com/in/janedoe", false},
		{"availability", "dailyAvailability", "4", false},
		{"availability zero", "dailyAvailability", "0", true},
		{"availability prose", "dailyAvailability", "two", true},
		{"unknown field", "shoeSize", "42", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(nil)
			store.SignIn(context.Background(), "u1", models.UserProfile{})

			_, err := store.UpdateField(context.Background(), "u1", tt.field, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateFieldPersistsLocally(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()
	store.SignIn(ctx, "u1", models.UserProfile{})

	if _, err := store.UpdateField(ctx, "u1", "dailyAvailability", "6"); err != nil {
		t.Fatal(err)
	}
	if got := store.Get("u1"); got.DailyAvailability != 6 {
		t.Errorf("dailyAvailability = %d, want 6", got.DailyAvailability)
	}
}
