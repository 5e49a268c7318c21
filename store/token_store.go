package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/types"
)

// PostgresTokenStore persists OAuth token records in the `users` table,
// one row per email.
type PostgresTokenStore struct {
	db *sql.DB
}

func NewPostgresTokenStore(db *sql.DB) *PostgresTokenStore {
	return &PostgresTokenStore{
		db: db,
	}
}

// FindByEmail gets the token record by `email`. Returns nil when no
// record exists.
func (s *PostgresTokenStore) FindByEmail(ctx context.Context, email string) (*types.UserToken, error) {
	const query = `
	    SELECT
		    user_email, access_token, refresh_token, expires_at, created_at, updated_at
		FROM
		    users
		WHERE
		    user_email = $1
	`

	var t types.UserToken
	row := s.db.QueryRowContext(ctx, query, email)
	err := row.Scan(
		&t.UserEmail,
		&t.AccessToken,
		&t.RefreshToken,
		&t.ExpiresAt,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// Create inserts a new token record for a freshly authorized user.
func (s *PostgresTokenStore) Create(ctx context.Context, t *types.UserToken) error {
	const query = `
	    INSERT INTO users (
		    user_email,
			access_token,
			refresh_token,
			expires_at,
			updated_at
		)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		t.UserEmail,
		t.AccessToken,
		t.RefreshToken,
		t.ExpiresAt,
		time.Now(),
	)
	if err != nil {
		return err
	}

	return nil
}

// UpdateTokens replaces the stored credentials for `email`.
func (s *PostgresTokenStore) UpdateTokens(ctx context.Context, email, accessToken, refreshToken string, expiresAt time.Time) error {
	const query = `
	    UPDATE users
		SET
		    access_token = $1,
			refresh_token = $2,
			expires_at = $3,
			updated_at = $4
		WHERE
		    user_email = $5
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		accessToken,
		refreshToken,
		expiresAt,
		time.Now(),
		email,
	)
	if err != nil {
		return err
	}

	return nil
}

// Delete removes the token record for `email`.
func (s *PostgresTokenStore) Delete(ctx context.Context, email string) error {
	const query = `DELETE FROM users WHERE user_email = $1`

	_, err := s.db.ExecContext(ctx, query, email)
	if err != nil {
		return err
	}

	return nil
}
