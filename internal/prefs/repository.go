// Package prefs stores per-user key-value preferences that sit outside any
// single view, like the listing page size.
package prefs

import (
	"database/sql"

	"github.com/spf13/cast"
)

const keyPageSize = "page_size"

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Get(userID, key string) (string, error) {
	var value string
	err := r.db.QueryRow(
		`SELECT value FROM user_preferences WHERE user_id = $1 AND key = $2`,
		userID, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

func (r *Repository) Set(userID, key, value string) error {
	_, err := r.db.Exec(`
		INSERT INTO user_preferences (user_id, key, value, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id, key) DO UPDATE SET value = $3, updated_at = CURRENT_TIMESTAMP`,
		userID, key, value)
	return err
}

func (r *Repository) Delete(userID, key string) error {
	_, err := r.db.Exec(
		`DELETE FROM user_preferences WHERE user_id = $1 AND key = $2`, userID, key)
	return err
}

// PageSize returns the user's listing page size, or nil when unset or
// unparseable. Nil tells the query builder to omit the limit so the listing
// service applies its own default.
func (r *Repository) PageSize(userID string) (*int, error) {
	value, err := r.Get(userID, keyPageSize)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, nil
	}
	size, err := cast.ToIntE(value)
	if err != nil || size <= 0 {
		return nil, nil
	}
	return &size, nil
}

// SetPageSize stores the page size; zero or negative clears it back to the
// server default.
func (r *Repository) SetPageSize(userID string, size int) error {
	if size <= 0 {
		return r.Delete(userID, keyPageSize)
	}
	return r.Set(userID, keyPageSize, cast.ToString(size))
}
