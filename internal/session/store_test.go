package session

import (
	"context"
	"strings"
	"testing"

	"zysculpt/internal/models"
)

func TestFirstAccessSeedsDefaultResume(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()

	sessions, activeID := store.List(ctx, "u1")
	if len(sessions) != 1 {
		t.Fatalf("expected one seeded session, got %d", len(sessions))
	}
	seed := sessions[0]
	if seed.Type != models.KindResume {
		t.Errorf("seed type = %q, want %q", seed.Type, models.KindResume)
	}
	if seed.Title != "New Resume" {
		t.Errorf("seed title = %q", seed.Title)
	}
	if activeID != seed.ID {
		t.Errorf("activeID = %q, want %q", activeID, seed.ID)
	}
	if len(seed.Messages) != 1 || seed.Messages[0].Role != models.RoleAssistant {
		t.Fatalf("seed should carry exactly one assistant message, got %+v", seed.Messages)
	}
	if seed.JobDescription != "" {
		t.Errorf("seed jobDescription = %q, want empty", seed.JobDescription)
	}
	if seed.FinalDocument != nil {
		t.Errorf("seed finalDocument should be nil")
	}
}

func TestCreateJobSeededSession(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()

	jd := "Senior Engineer role at a fintech startup"
	sess := store.Create(ctx, "u1", models.KindResume, "Acme Resume", jd, "Acme Corp")

	if sess.JobDescription != jd {
		t.Errorf("jobDescription = %q, want %q", sess.JobDescription, jd)
	}
	if len(sess.Messages) != 1 {
		t.Fatalf("expected one welcome message, got %d", len(sess.Messages))
	}
	if !strings.Contains(sess.Messages[0].Content, "Acme Corp") {
		t.Errorf("welcome message should reference the context label, got %q", sess.Messages[0].Content)
	}

	_, activeID := store.List(ctx, "u1")
	if activeID != sess.ID {
		t.Errorf("new session should become active, activeID = %q", activeID)
	}
}

func TestUpdateMergesOnlyPresentFields(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()

	jd := "Backend role"
	sess := store.Create(ctx, "u1", models.KindCoverLetter, "Letter", jd, "")
	before := sess.LastUpdated

	title := "Renamed Letter"
	store.Update(ctx, "u1", sess.ID, Patch{Title: &title})

	got, ok := store.Get(ctx, "u1", sess.ID)
	if !ok {
		t.Fatal("session vanished")
	}
	if got.Title != title {
		t.Errorf("title = %q, want %q", got.Title, title)
	}
	if got.JobDescription != jd {
		t.Errorf("jobDescription changed to %q, patch did not carry it", got.JobDescription)
	}
	if got.Type != models.KindCoverLetter {
		t.Errorf("type changed to %q", got.Type)
	}
	if !got.LastUpdated.After(before) {
		t.Errorf("lastUpdated did not strictly increase: %v -> %v", before, got.LastUpdated)
	}
}

func TestUpdateStrictlyIncreasesOnRapidEdits(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()
	sess := store.Create(ctx, "u1", models.KindResume, "", "", "")

	prev := sess.LastUpdated
	for i := 0; i < 10; i++ {
		title := "t"
		store.Update(ctx, "u1", sess.ID, Patch{Title: &title})
		got, _ := store.Get(ctx, "u1", sess.ID)
		if !got.LastUpdated.After(prev) {
			t.Fatalf("edit %d: lastUpdated %v not after %v", i, got.LastUpdated, prev)
		}
		prev = got.LastUpdated
	}
}

func TestUpdateMissingSessionIsNoop(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()
	store.List(ctx, "u1")

	title := "ghost"
	store.Update(ctx, "u1", "no-such-id", Patch{Title: &title})

	sessions, _ := store.List(ctx, "u1")
	if len(sessions) != 1 {
		t.Fatalf("noop update changed the list: %d sessions", len(sessions))
	}
}

func TestAppendChunkTargetsOneSession(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()

	a := store.Create(ctx, "u1", models.KindResume, "A", "", "")
	b := store.Create(ctx, "u1", models.KindResume, "B", "", "")

	reply, ok := store.AppendMessage(ctx, "u1", a.ID, models.RoleAssistant, "")
	if !ok {
		t.Fatal("append failed")
	}
	store.AppendChunk("u1", a.ID, reply.ID, "Hello")
	store.AppendChunk("u1", a.ID, reply.ID, ", world")

	gotA, _ := store.Get(ctx, "u1", a.ID)
	last := gotA.Messages[len(gotA.Messages)-1]
	if last.Content != "Hello, world" {
		t.Errorf("streamed content = %q", last.Content)
	}

	gotB, _ := store.Get(ctx, "u1", b.ID)
	if len(gotB.Messages) != len(b.Messages) {
		t.Errorf("session B message count changed: %d -> %d", len(b.Messages), len(gotB.Messages))
	}
	for i, m := range gotB.Messages {
		if m.Content != b.Messages[i].Content {
			t.Errorf("session B message %d mutated: %q", i, m.Content)
		}
	}
}

func TestAppendChunkSurvivesActiveSwitch(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()

	a := store.Create(ctx, "u1", models.KindResume, "A", "", "")
	b := store.Create(ctx, "u1", models.KindResume, "B", "", "")

	reply, _ := store.AppendMessage(ctx, "u1", a.ID, models.RoleAssistant, "")
	store.SetActive(ctx, "u1", b.ID)
	store.AppendChunk("u1", a.ID, reply.ID, "late chunk")

	gotA, _ := store.Get(ctx, "u1", a.ID)
	if gotA.Messages[len(gotA.Messages)-1].Content != "late chunk" {
		t.Error("chunk did not land on the originating session")
	}
	gotB, _ := store.Get(ctx, "u1", b.ID)
	for _, m := range gotB.Messages {
		if m.Content == "late chunk" {
			t.Error("chunk leaked into the now-active session")
		}
	}
}

func TestDeleteActivePromotesMostRecent(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()

	a := store.Create(ctx, "u1", models.KindResume, "A", "", "")
	b := store.Create(ctx, "u1", models.KindCoverLetter, "B", "", "")
	// Touch A so it is the most recently updated survivor.
	title := "A touched"
	store.Update(ctx, "u1", a.ID, Patch{Title: &title})

	store.Delete(ctx, "u1", b.ID)

	_, activeID := store.List(ctx, "u1")
	if activeID != a.ID {
		t.Errorf("activeID = %q, want most recently updated survivor %q", activeID, a.ID)
	}
}

func TestDeleteLastSessionReseeds(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()

	sessions, _ := store.List(ctx, "u1")
	store.Delete(ctx, "u1", sessions[0].ID)

	after, activeID := store.List(ctx, "u1")
	if len(after) != 1 {
		t.Fatalf("expected a reseeded session, got %d", len(after))
	}
	if after[0].ID == sessions[0].ID {
		t.Error("reseeded session reused the deleted id")
	}
	if activeID != after[0].ID {
		t.Errorf("activeID = %q, want %q", activeID, after[0].ID)
	}
	if after[0].Type != models.KindResume {
		t.Errorf("reseeded type = %q", after[0].Type)
	}
}

func TestUsersAreIsolated(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()

	store.Create(ctx, "u1", models.KindResume, "Mine", "", "")
	sessions, _ := store.List(ctx, "u2")
	for _, s := range sessions {
		if s.Title == "Mine" {
			t.Error("u1's session visible to u2")
		}
	}
}

func TestSetActiveUnknownID(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()
	store.List(ctx, "u1")

	if store.SetActive(ctx, "u1", "nope") {
		t.Error("SetActive accepted an unknown id")
	}
}

func TestGetReturnsDetachedCopy(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()

	sess := store.Create(ctx, "u1", models.KindResume, "A", "", "")
	got, _ := store.Get(ctx, "u1", sess.ID)
	got.Messages[0].Content = "tampered"

	again, _ := store.Get(ctx, "u1", sess.ID)
	if again.Messages[0].Content == "tampered" {
		t.Error("Get leaked store-owned message slice")
	}
}
