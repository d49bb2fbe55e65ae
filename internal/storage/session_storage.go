package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"zysculpt/internal/models"
)

// UpsertSession replaces the stored record wholesale. The row's last_updated
// column mirrors the record so list ordering survives a round trip.
func (s *Store) UpsertSession(ctx context.Context, userID string, sess models.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("UpsertSession(): marshal session %s: %w", sess.ID, err)
	}

	stmt, err := s.db.PrepareContext(ctx, `
		INSERT INTO sessions(id, user_id, data, last_updated) VALUES(?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, last_updated = excluded.last_updated`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, sess.ID, userID, string(data), sess.LastUpdated.UnixMilli())
	return err
}

func (s *Store) DeleteSession(ctx context.Context, userID, sessionID string) error {
	stmt, err := s.db.PrepareContext(ctx, "DELETE FROM sessions WHERE id = ? AND user_id = ?")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, sessionID, userID)
	return err
}

// ListSessions returns the user's sessions ordered by last-updated descending.
func (s *Store) ListSessions(ctx context.Context, userID string) ([]models.Session, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT data FROM sessions WHERE user_id = ? ORDER BY last_updated DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var sess models.Session
		if err := json.Unmarshal([]byte(data), &sess); err != nil {
			return nil, fmt.Errorf("ListSessions(): unmarshal session record: %w", err)
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}
