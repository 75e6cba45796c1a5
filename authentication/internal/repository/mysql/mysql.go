package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/abhishek622/catflix/authentication/internal/repository"
	"github.com/abhishek622/catflix/internal/mysqlutil"
)

// Repository defines a MySQL-based credentials repository.
//
//	CREATE TABLE credentials (
//	  pseudo VARCHAR(255) PRIMARY KEY,
//	  password_hash VARBINARY(255) NOT NULL
//	);
type Repository struct {
	db *sql.DB
}

// New creates a new MySQL-based repository.
func New(db *sql.DB) *Repository {
	return &Repository{db}
}

// Get retrieves the password hash of pseudo.
func (r *Repository) Get(ctx context.Context, pseudo string) ([]byte, error) {
	var hash []byte
	err := r.db.QueryRowContext(ctx, "SELECT password_hash FROM credentials WHERE pseudo = ?", pseudo).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return hash, nil
}

// Create stores a new password hash for pseudo.
func (r *Repository) Create(ctx context.Context, pseudo string, hash []byte) error {
	_, err := r.db.ExecContext(ctx, "INSERT INTO credentials (pseudo, password_hash) VALUES (?, ?)", pseudo, hash)
	if mysqlutil.IsDuplicate(err) {
		return repository.ErrAlreadyExists
	}
	return err
}

// Update replaces the password hash of pseudo.
func (r *Repository) Update(ctx context.Context, pseudo string, hash []byte) error {
	res, err := r.db.ExecContext(ctx, "UPDATE credentials SET password_hash = ? WHERE pseudo = ?", hash, pseudo)
	if err != nil {
		return err
	}
	return mysqlutil.RequireRow(res, repository.ErrNotFound)
}

// Delete removes the credentials of pseudo.
func (r *Repository) Delete(ctx context.Context, pseudo string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM credentials WHERE pseudo = ?", pseudo)
	if err != nil {
		return err
	}
	return mysqlutil.RequireRow(res, repository.ErrNotFound)
}
