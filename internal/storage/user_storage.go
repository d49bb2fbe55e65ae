package storage

import (
	"context"
	"database/sql"
	"errors"

	"zysculpt/internal/models"

	"github.com/google/uuid"
	"modernc.org/sqlite"
)

var ErrUsernameExists = errors.New("username already exists")
var ErrUserNotFound = errors.New("user not found")

func (s *Store) CreateUser(ctx context.Context, username, passwordHash string) (string, error) {
	stmt, err := s.db.PrepareContext(ctx, "INSERT INTO users(id, username, password_hash) VALUES(?, ?, ?)")
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	id := uuid.New().String()
	_, err = stmt.ExecContext(ctx, id, username, passwordHash)
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) {
			if sqliteErr.Code() == 2067 { // SQLITE_CONSTRAINT_UNIQUE
				return "", ErrUsernameExists
			}
		}
		return "", err
	}
	return id, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User

	row := s.db.QueryRowContext(ctx, "SELECT id, username, password_hash FROM users WHERE username = ?", username)
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash); err != nil {
		if err == sql.ErrNoRows {
			return user, ErrUserNotFound
		}
		return user, err
	}
	return user, nil
}
