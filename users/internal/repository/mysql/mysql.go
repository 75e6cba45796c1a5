package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/abhishek622/catflix/internal/mysqlutil"
	"github.com/abhishek622/catflix/users/internal/repository"
	"github.com/abhishek622/catflix/users/pkg/model"
)

// Repository defines a MySQL-based user repository.
//
//	CREATE TABLE users (
//	  pseudo VARCHAR(255) PRIMARY KEY,
//	  firstname VARCHAR(255) NOT NULL,
//	  lastname VARCHAR(255) NOT NULL
//	);
type Repository struct {
	db *sql.DB
}

// New creates a new MySQL-based repository.
func New(db *sql.DB) *Repository {
	return &Repository{db}
}

// Get retrieves a user by pseudo.
func (r *Repository) Get(ctx context.Context, pseudo string) (*model.User, error) {
	u := &model.User{Pseudo: pseudo}
	err := r.db.QueryRowContext(ctx, "SELECT firstname, lastname FROM users WHERE pseudo = ?", pseudo).
		Scan(&u.Firstname, &u.Lastname)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create adds a new user.
func (r *Repository) Create(ctx context.Context, u *model.User) error {
	_, err := r.db.ExecContext(ctx, "INSERT INTO users (pseudo, firstname, lastname) VALUES (?, ?, ?)",
		u.Pseudo, u.Firstname, u.Lastname)
	if mysqlutil.IsDuplicate(err) {
		return repository.ErrAlreadyExists
	}
	return err
}

// Update replaces an existing user.
func (r *Repository) Update(ctx context.Context, u *model.User) error {
	res, err := r.db.ExecContext(ctx, "UPDATE users SET firstname = ?, lastname = ? WHERE pseudo = ?",
		u.Firstname, u.Lastname, u.Pseudo)
	if err != nil {
		return err
	}
	return mysqlutil.RequireRow(res, repository.ErrNotFound)
}

// Delete removes a user.
func (r *Repository) Delete(ctx context.Context, pseudo string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE pseudo = ?", pseudo)
	if err != nil {
		return err
	}
	return mysqlutil.RequireRow(res, repository.ErrNotFound)
}
