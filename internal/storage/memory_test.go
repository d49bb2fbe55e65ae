package storage

import (
	"context"
	"testing"
	"time"

	"zysculpt/internal/models"
)

func TestMemoryCreateUserRejectsDuplicate(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if _, err := m.CreateUser(ctx, "jane", "hash"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.CreateUser(ctx, "jane", "hash2"); err != ErrUsernameExists {
		t.Errorf("err = %v, want ErrUsernameExists", err)
	}
}

func TestMemoryGetUnknownUser(t *testing.T) {
	m := NewMemory()
	if _, err := m.GetUserByUsername(context.Background(), "nobody"); err != ErrUserNotFound {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestMemoryListSessionsOrdering(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	base := time.Now()

	for i, id := range []string{"old", "newest", "mid"} {
		offsets := []time.Duration{0, 2 * time.Minute, time.Minute}
		sess := models.Session{ID: id, Type: models.KindResume, LastUpdated: base.Add(offsets[i])}
		if err := m.UpsertSession(ctx, "u1", sess); err != nil {
			t.Fatal(err)
		}
	}

	got, err := m.ListSessions(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	wantOrder := []string{"newest", "mid", "old"}
	for i, want := range wantOrder {
		if got[i].ID != want {
			t.Errorf("position %d = %q, want %q", i, got[i].ID, want)
		}
	}
}

func TestMemoryUpsertReplacesWholeRecord(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	first := models.Session{ID: "s1", Title: "First", JobDescription: "jd"}
	if err := m.UpsertSession(ctx, "u1", first); err != nil {
		t.Fatal(err)
	}
	second := models.Session{ID: "s1", Title: "Second"}
	if err := m.UpsertSession(ctx, "u1", second); err != nil {
		t.Fatal(err)
	}

	got, _ := m.ListSessions(ctx, "u1")
	if len(got) != 1 {
		t.Fatalf("got %d sessions", len(got))
	}
	if got[0].Title != "Second" || got[0].JobDescription != "" {
		t.Errorf("upsert did not replace the whole record: %+v", got[0])
	}
}

func TestMemoryProfiles(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if _, ok, _ := m.GetProfile(ctx, "u1"); ok {
		t.Error("profile should not exist yet")
	}
	if err := m.UpsertProfile(ctx, "u1", models.UserProfile{FullName: "Jane"}); err != nil {
		t.Fatal(err)
	}
	got, ok, err := m.GetProfile(ctx, "u1")
	if err != nil || !ok || got.FullName != "Jane" {
		t.Errorf("GetProfile = (%+v, %v, %v)", got, ok, err)
	}
}
