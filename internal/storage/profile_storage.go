package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"zysculpt/internal/models"
)

func (s *Store) UpsertProfile(ctx context.Context, userID string, profile models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("UpsertProfile(): marshal profile for %s: %w", userID, err)
	}

	stmt, err := s.db.PrepareContext(ctx, `
		INSERT INTO profiles(user_id, data) VALUES(?, ?)
		ON CONFLICT(user_id) DO UPDATE SET data = excluded.data`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, userID, string(data))
	return err
}

// GetProfile returns ok=false when no record exists yet for the user.
func (s *Store) GetProfile(ctx context.Context, userID string) (models.UserProfile, bool, error) {
	var profile models.UserProfile
	var data string

	row := s.db.QueryRowContext(ctx, "SELECT data FROM profiles WHERE user_id = ?", userID)
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return profile, false, nil
		}
		return profile, false, err
	}
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		return profile, false, fmt.Errorf("GetProfile(): unmarshal profile record: %w", err)
	}
	return profile, true, nil
}
