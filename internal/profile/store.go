// Package profile holds the single per-user profile record and mirrors field
// edits to the persistence store.
package profile

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"

	"zysculpt/internal/models"
)

// Mirror is the narrow remote seam; every push replaces the whole record.
type Mirror interface {
	UpsertProfile(ctx context.Context, userID string, profile models.UserProfile) error
	GetProfile(ctx context.Context, userID string) (models.UserProfile, bool, error)
}

type Store struct {
	mu       sync.RWMutex
	profiles map[string]models.UserProfile
	mirror   Mirror // nil in local-only mode
}

func NewStore(mirror Mirror) *Store {
	return &Store{
		profiles: make(map[string]models.UserProfile),
		mirror:   mirror,
	}
}

// SignIn seeds the local record by merging, in priority order, the remote
// profile, the in-process record, identity-provider hints, and safe defaults,
// so a first-time user sees pre-filled values without an explicit save step.
func (s *Store) SignIn(ctx context.Context, userID string, hints models.UserProfile) models.UserProfile {
	var remote models.UserProfile
	haveRemote := false
	if s.mirror != nil {
		p, ok, err := s.mirror.GetProfile(ctx, userID)
		if err != nil {
			log.Printf("profile.SignIn(): mirror read failed for %s: %v", userID, err)
		} else if ok {
			remote = p
			haveRemote = true
		}
	}

	merged := remote
	if !haveRemote {
		// No remote record yet; keep whatever this process already holds.
		s.mu.RLock()
		merged = s.profiles[userID]
		s.mu.RUnlock()
	}
	if merged.FullName == "" {
		merged.FullName = hints.FullName
	}
	if merged.Voice == "" {
		merged.Voice = hints.Voice
	}
	if merged.DailyAvailability <= 0 {
		merged.DailyAvailability = 2
	}

	s.mu.Lock()
	s.profiles[userID] = merged
	s.mu.Unlock()

	if s.mirror != nil {
		go func() {
			if err := s.mirror.UpsertProfile(context.Background(), userID, merged); err != nil {
				log.Printf("profile.SignIn(): mirror upsert failed for %s: %v", userID, err)
			}
		}()
	}
	return merged
}

func (s *Store) Get(userID string) models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles[userID]
}

// UpdateField applies one optimistic local edit and pushes the complete
// current record remotely; there is no field-level diffing on the wire.
func (s *Store) UpdateField(ctx context.Context, userID, field, value string) (models.UserProfile, error) {
	s.mu.Lock()
	p := s.profiles[userID]
	switch field {
	case "fullName":
		p.FullName = value
	case "title":
		p.Title = value
	case "email":
		p.Email = value
	case "phone":
		p.Phone = value
	case "location":
		p.Location = value
	case "linkedIn":
		p.LinkedIn = value
	case "baseResumeText":
		p.BaseResumeText = value
	case "voice":
		p.Voice = value
	case "dailyAvailability":
		hours, err := strconv.Atoi(value)
		if err != nil || hours <= 0 {
			s.mu.Unlock()
			return p, fmt.Errorf("UpdateField(): dailyAvailability must be a positive number")
		}
		p.DailyAvailability = hours
	default:
		s.mu.Unlock()
		return p, fmt.Errorf("UpdateField(): unknown profile field %q", field)
	}
	s.profiles[userID] = p
	s.mu.Unlock()

	if s.mirror != nil {
		go func() {
			if err := s.mirror.UpsertProfile(context.Background(), userID, p); err != nil {
				log.Printf("profile.UpdateField(): mirror upsert failed for %s: %v", userID, err)
			}
		}()
	}
	return p, nil
}
