package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/abhishek622/catflix/internal/mysqlutil"
	"github.com/abhishek622/catflix/reviews/internal/repository"
	"github.com/abhishek622/catflix/reviews/pkg/model"
)

// Repository defines a MySQL-based review repository.
//
//	CREATE TABLE reviews (
//	  id BIGINT AUTO_INCREMENT PRIMARY KEY,
//	  pseudo VARCHAR(255) NOT NULL,
//	  hash VARCHAR(255) NOT NULL,
//	  rating INT NOT NULL,
//	  comment TEXT NOT NULL,
//	  UNIQUE KEY (pseudo, hash),
//	  INDEX (hash)
//	);
type Repository struct {
	db *sql.DB
}

const columns = "id, pseudo, hash, rating, comment"

// New creates a new MySQL-based repository.
func New(db *sql.DB) *Repository {
	return &Repository{db}
}

// Get retrieves the review of hash written by pseudo.
func (r *Repository) Get(ctx context.Context, pseudo, hash string) (*model.Review, error) {
	rev := &model.Review{}
	err := r.db.QueryRowContext(ctx, "SELECT "+columns+" FROM reviews WHERE pseudo = ? AND hash = ?", pseudo, hash).
		Scan(&rev.ID, &rev.Pseudo, &rev.Hash, &rev.Rating, &rev.Comment)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rev, nil
}

// List returns every review.
func (r *Repository) List(ctx context.Context) ([]model.Review, error) {
	return r.query(ctx, "SELECT "+columns+" FROM reviews ORDER BY id")
}

// ListByPseudo returns the reviews written by pseudo.
func (r *Repository) ListByPseudo(ctx context.Context, pseudo string) ([]model.Review, error) {
	return r.query(ctx, "SELECT "+columns+" FROM reviews WHERE pseudo = ? ORDER BY id", pseudo)
}

// ListByHash returns the reviews of hash.
func (r *Repository) ListByHash(ctx context.Context, hash string) ([]model.Review, error) {
	return r.query(ctx, "SELECT "+columns+" FROM reviews WHERE hash = ? ORDER BY id", hash)
}

// Create stores a new review and assigns its ID. The unique key on
// (pseudo, hash) still rejects a concurrent duplicate that passes the lookup.
func (r *Repository) Create(ctx context.Context, rev *model.Review) error {
	if _, err := r.Get(ctx, rev.Pseudo, rev.Hash); err == nil {
		return repository.ErrAlreadyExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	res, err := r.db.ExecContext(ctx, "INSERT INTO reviews (pseudo, hash, rating, comment) VALUES (?, ?, ?, ?)",
		rev.Pseudo, rev.Hash, rev.Rating, rev.Comment)
	if mysqlutil.IsDuplicate(err) {
		return repository.ErrAlreadyExists
	}
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rev.ID = id
	return nil
}

// Update replaces an existing review, keeping its ID.
func (r *Repository) Update(ctx context.Context, rev *model.Review) error {
	existing, err := r.Get(ctx, rev.Pseudo, rev.Hash)
	if err != nil {
		return err
	}
	rev.ID = existing.ID
	res, err := r.db.ExecContext(ctx, "UPDATE reviews SET rating = ?, comment = ? WHERE id = ?", rev.Rating, rev.Comment, rev.ID)
	if err != nil {
		return err
	}
	return mysqlutil.RequireRow(res, repository.ErrNotFound)
}

// Delete removes the review of hash written by pseudo.
func (r *Repository) Delete(ctx context.Context, pseudo, hash string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM reviews WHERE pseudo = ? AND hash = ?", pseudo, hash)
	if err != nil {
		return err
	}
	return mysqlutil.RequireRow(res, repository.ErrNotFound)
}

// DeleteByPseudo removes every review written by pseudo.
func (r *Repository) DeleteByPseudo(ctx context.Context, pseudo string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM reviews WHERE pseudo = ?", pseudo)
	return err
}

// DeleteByHash removes every review of hash.
func (r *Repository) DeleteByHash(ctx context.Context, hash string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM reviews WHERE hash = ?", hash)
	return err
}

func (r *Repository) query(ctx context.Context, q string, args ...any) ([]model.Review, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []model.Review{}
	for rows.Next() {
		var rev model.Review
		if err := rows.Scan(&rev.ID, &rev.Pseudo, &rev.Hash, &rev.Rating, &rev.Comment); err != nil {
			return nil, err
		}
		res = append(res, rev)
	}
	return res, rows.Err()
}
