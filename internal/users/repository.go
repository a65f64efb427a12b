package users

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(u *User) error {
	u.ID = uuid.NewString()
	return r.db.QueryRow(`
		INSERT INTO users (id, full_name, email, password_hash, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`,
		u.ID, u.FullName, u.Email, u.PasswordHash, u.IsAdmin,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
}

func (r *Repository) GetByID(id string) (*User, error) {
	u := &User{}
	err := r.db.QueryRow(`
		SELECT id, full_name, email, password_hash, is_admin, created_at, updated_at
		FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	return u, nil
}

func (r *Repository) GetByEmail(email string) (*User, error) {
	u := &User{}
	err := r.db.QueryRow(`
		SELECT id, full_name, email, password_hash, is_admin, created_at, updated_at
		FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *Repository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

func (r *Repository) List() ([]User, error) {
	rows, err := r.db.Query(`
		SELECT id, full_name, email, password_hash, is_admin, created_at, updated_at
		FROM users ORDER BY full_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.IsAdmin,
			&u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
