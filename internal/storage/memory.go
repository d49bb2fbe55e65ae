package storage

import (
	"context"
	"sort"
	"sync"

	"zysculpt/internal/models"

	"github.com/google/uuid"
)

// Memory is the local-only fallback used when no database path is configured,
// and the fake mirror in tests. It satisfies the same narrow interfaces as Store.
type Memory struct {
	mu       sync.Mutex
	users    map[string]models.User               // by username
	profiles map[string]models.UserProfile        // by user id
	sessions map[string]map[string]models.Session // user id -> session id -> record
}

func NewMemory() *Memory {
	return &Memory{
		users:    make(map[string]models.User),
		profiles: make(map[string]models.UserProfile),
		sessions: make(map[string]map[string]models.Session),
	}
}

func (m *Memory) CreateUser(ctx context.Context, username, passwordHash string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.users[username]; exists {
		return "", ErrUsernameExists
	}
	id := uuid.New().String()
	m.users[username] = models.User{ID: id, Username: username, PasswordHash: passwordHash}
	return id, nil
}

func (m *Memory) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, exists := m.users[username]
	if !exists {
		return user, ErrUserNotFound
	}
	return user, nil
}

func (m *Memory) UpsertProfile(ctx context.Context, userID string, profile models.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[userID] = profile
	return nil
}

func (m *Memory) GetProfile(ctx context.Context, userID string) (models.UserProfile, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	profile, ok := m.profiles[userID]
	return profile, ok, nil
}

func (m *Memory) UpsertSession(ctx context.Context, userID string, sess models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sessions[userID] == nil {
		m.sessions[userID] = make(map[string]models.Session)
	}
	m.sessions[userID][sess.ID] = sess.Clone()
	return nil
}

func (m *Memory) DeleteSession(ctx context.Context, userID, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions[userID], sessionID)
	return nil
}

func (m *Memory) ListSessions(ctx context.Context, userID string) ([]models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Session
	for _, sess := range m.sessions[userID] {
		out = append(out, sess.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastUpdated.After(out[j].LastUpdated)
	})
	return out, nil
}
