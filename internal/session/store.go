// Package session holds the authoritative in-memory session state per user.
// The persistence store is an eventually-consistent mirror: every mutation is
// pushed whole-record and best-effort, failures are logged and never block or
// roll back the local write.
package session

import (
	"context"
	"log"
	"sync"
	"time"

	"zysculpt/internal/models"

	"github.com/google/uuid"
)

// Mirror is the narrow seam to the remote persistence store. Implementations
// must treat every write as a whole-record replacement.
type Mirror interface {
	UpsertSession(ctx context.Context, userID string, sess models.Session) error
	DeleteSession(ctx context.Context, userID, sessionID string) error
	ListSessions(ctx context.Context, userID string) ([]models.Session, error)
}

// Patch carries a partial session update. Nil fields are left untouched;
// the document-type tag is deliberately absent, it never changes.
type Patch struct {
	Title          *string
	Messages       []models.Message
	JobDescription *string
	Background     *string
	FinalDocument  *string
	StylePrefs     *models.StylePrefs
	CareerGoal     *models.CareerGoal
}

type userSessions struct {
	list     []models.Session // front = most recently created
	activeID string
	hydrated bool
}

type Store struct {
	mu     sync.RWMutex
	users  map[string]*userSessions
	mirror Mirror // nil in local-only mode
}

func NewStore(mirror Mirror) *Store {
	return &Store{
		users:  make(map[string]*userSessions),
		mirror: mirror,
	}
}

// List returns the user's sessions and the active session id, hydrating from
// the mirror on first access. An empty remote list seeds one default session.
func (s *Store) List(ctx context.Context, userID string) ([]models.Session, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	us := s.ensureLocked(ctx, userID)
	out := make([]models.Session, 0, len(us.list))
	for _, sess := range us.list {
		out = append(out, sess.Clone())
	}
	return out, us.activeID
}

// Get returns a detached copy of one session.
func (s *Store) Get(ctx context.Context, userID, sessionID string) (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	us := s.ensureLocked(ctx, userID)
	for i := range us.list {
		if us.list[i].ID == sessionID {
			return us.list[i].Clone(), true
		}
	}
	return models.Session{}, false
}

// Create builds a new session with a kind-specific welcome message, inserts it
// at the front of the list and makes it active.
func (s *Store) Create(ctx context.Context, userID string, kind models.DocumentKind, title, jobDescription, contextLabel string) models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	us := s.ensureLocked(ctx, userID)
	sess := s.createLocked(us, kind, title, jobDescription, contextLabel)
	s.pushAsync(userID, sess)
	return sess.Clone()
}

// Update merges the patch into the matching session, preserving every field
// the patch does not carry, and bumps LastUpdated strictly forward.
func (s *Store) Update(ctx context.Context, userID, sessionID string, p Patch) {
	s.mu.Lock()
	us := s.ensureLocked(ctx, userID)
	idx := -1
	for i := range us.list {
		if us.list[i].ID == sessionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		log.Printf("Store.Update(): no session %s for user %s, nothing to merge", sessionID, userID)
		return
	}

	sess := &us.list[idx]
	if p.Title != nil {
		sess.Title = *p.Title
	}
	if p.Messages != nil {
		sess.Messages = p.Messages
	}
	if p.JobDescription != nil {
		sess.JobDescription = *p.JobDescription
	}
	if p.Background != nil {
		sess.Background = *p.Background
	}
	if p.FinalDocument != nil {
		v := *p.FinalDocument
		sess.FinalDocument = &v
	}
	if p.StylePrefs != nil {
		v := *p.StylePrefs
		sess.StylePrefs = &v
	}
	if p.CareerGoal != nil {
		v := *p.CareerGoal
		sess.CareerGoal = &v
	}
	sess.LastUpdated = bump(sess.LastUpdated)
	snapshot := sess.Clone()
	s.mu.Unlock()

	s.pushAsync(userID, snapshot)
}

// Rename is a convenience wrapper over Update.
func (s *Store) Rename(ctx context.Context, userID, sessionID, title string) {
	s.Update(ctx, userID, sessionID, Patch{Title: &title})
}

// Delete removes the session. Deleting the active session activates the most
// recently updated survivor, or reseeds a fresh default when none remain.
// Remote failure never rolls back the local removal.
func (s *Store) Delete(ctx context.Context, userID, sessionID string) {
	s.mu.Lock()
	us := s.ensureLocked(ctx, userID)
	idx := -1
	for i := range us.list {
		if us.list[i].ID == sessionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	us.list = append(us.list[:idx], us.list[idx+1:]...)

	var reseeded *models.Session
	if us.activeID == sessionID {
		if len(us.list) == 0 {
			sess := s.createLocked(us, models.KindResume, "", "", "")
			reseeded = &sess
		} else {
			best := 0
			for i := range us.list {
				if us.list[i].LastUpdated.After(us.list[best].LastUpdated) {
					best = i
				}
			}
			us.activeID = us.list[best].ID
		}
	}
	s.mu.Unlock()

	if s.mirror != nil {
		go func() {
			if err := s.mirror.DeleteSession(context.Background(), userID, sessionID); err != nil {
				log.Printf("Store.Delete(): mirror delete failed for %s: %v", sessionID, err)
			}
		}()
	}
	if reseeded != nil {
		s.pushAsync(userID, *reseeded)
	}
}

// SetActive moves the active pointer. The pointer is process-local UI state
// and is never mirrored.
func (s *Store) SetActive(ctx context.Context, userID, sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	us := s.ensureLocked(ctx, userID)
	for i := range us.list {
		if us.list[i].ID == sessionID {
			us.activeID = sessionID
			return true
		}
	}
	return false
}

// AppendMessage appends one turn and returns the stored message.
func (s *Store) AppendMessage(ctx context.Context, userID, sessionID string, role models.Role, content string) (models.Message, bool) {
	msg := models.Message{
		ID:        uuid.New().String(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}

	s.mu.Lock()
	us := s.ensureLocked(ctx, userID)
	var snapshot models.Session
	found := false
	for i := range us.list {
		if us.list[i].ID == sessionID {
			us.list[i].Messages = append(us.list[i].Messages, msg)
			us.list[i].LastUpdated = bump(us.list[i].LastUpdated)
			snapshot = us.list[i].Clone()
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return models.Message{}, false
	}
	s.pushAsync(userID, snapshot)
	return msg, true
}

// AppendChunk grows one in-flight assistant message in place. The merge targets
// the original session id, so chunks keep landing in the right thread even when
// the user has switched sessions, and other sessions' message lists are never
// touched. Chunks are local-only; Sync pushes the finished record.
func (s *Store) AppendChunk(userID, sessionID, messageID, chunk string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	us := s.users[userID]
	if us == nil {
		return
	}
	for i := range us.list {
		if us.list[i].ID != sessionID {
			continue
		}
		msgs := us.list[i].Messages
		for j := range msgs {
			if msgs[j].ID == messageID {
				msgs[j].Content += chunk
				return
			}
		}
		return
	}
}

// Sync pushes the session's current record to the mirror, fire-and-forget.
// Used after a stream completes, since per-chunk pushes would be noise.
func (s *Store) Sync(ctx context.Context, userID, sessionID string) {
	s.mu.RLock()
	us := s.users[userID]
	var snapshot models.Session
	found := false
	if us != nil {
		for i := range us.list {
			if us.list[i].ID == sessionID {
				snapshot = us.list[i].Clone()
				found = true
				break
			}
		}
	}
	s.mu.RUnlock()

	if found {
		s.pushAsync(userID, snapshot)
	}
}

// ensureLocked hydrates the user's list from the mirror on first access.
// Callers must hold s.mu.
func (s *Store) ensureLocked(ctx context.Context, userID string) *userSessions {
	us := s.users[userID]
	if us == nil {
		us = &userSessions{}
		s.users[userID] = us
	}
	if us.hydrated {
		return us
	}
	us.hydrated = true

	if s.mirror != nil {
		remote, err := s.mirror.ListSessions(ctx, userID)
		if err != nil {
			log.Printf("Store.ensureLocked(): mirror list failed for user %s: %v", userID, err)
		} else {
			us.list = remote
		}
	}
	if len(us.list) == 0 {
		sess := s.createLocked(us, models.KindResume, "", "", "")
		s.pushAsync(userID, sess)
	} else {
		us.activeID = us.list[0].ID
	}
	return us
}

// createLocked builds and inserts a session at the front. Callers hold s.mu.
func (s *Store) createLocked(us *userSessions, kind models.DocumentKind, title, jobDescription, contextLabel string) models.Session {
	if title == "" {
		title = defaultTitle(kind)
	}
	sess := models.Session{
		ID:    uuid.New().String(),
		Title: title,
		Type:  kind,
		Messages: []models.Message{{
			ID:        uuid.New().String(),
			Role:      models.RoleAssistant,
			Content:   welcomeMessage(kind, contextLabel),
			Timestamp: time.Now(),
		}},
		JobDescription: jobDescription,
		LastUpdated:    time.Now(),
	}
	us.list = append([]models.Session{sess}, us.list...)
	us.activeID = sess.ID
	return sess
}

// pushAsync mirrors a record without holding the lock and without letting a
// failure reach the caller.
func (s *Store) pushAsync(userID string, sess models.Session) {
	if s.mirror == nil {
		return
	}
	go func() {
		if err := s.mirror.UpsertSession(context.Background(), userID, sess); err != nil {
			log.Printf("Store.pushAsync(): mirror upsert failed for %s: %v", sess.ID, err)
		}
	}()
}

// bump guarantees LastUpdated strictly increases even inside one clock tick.
func bump(prev time.Time) time.Time {
	now := time.Now()
	if !now.After(prev) {
		return prev.Add(time.Millisecond)
	}
	return now
}
