package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/abhishek622/catflix/internal/mysqlutil"
	"github.com/abhishek622/catflix/videos/internal/repository"
	"github.com/abhishek622/catflix/videos/pkg/model"
)

// Repository defines a MySQL-based video repository.
//
//	CREATE TABLE videos (
//	  hash VARCHAR(255) PRIMARY KEY,
//	  name VARCHAR(255) NOT NULL,
//	  author VARCHAR(255) NOT NULL,
//	  creation_year INT NOT NULL,
//	  duration INT NOT NULL,
//	  url TEXT NOT NULL,
//	  INDEX (author)
//	);
type Repository struct {
	db *sql.DB
}

const columns = "hash, name, author, creation_year, duration, url"

// New creates a new MySQL-based repository.
func New(db *sql.DB) *Repository {
	return &Repository{db}
}

// Get retrieves a video by hash.
func (r *Repository) Get(ctx context.Context, hash string) (*model.Video, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+columns+" FROM videos WHERE hash = ?", hash)
	v, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// List returns every video ordered by hash.
func (r *Repository) List(ctx context.Context) ([]model.Video, error) {
	return r.query(ctx, "SELECT "+columns+" FROM videos ORDER BY hash")
}

// ListByAuthor returns the videos of author ordered by hash.
func (r *Repository) ListByAuthor(ctx context.Context, author string) ([]model.Video, error) {
	return r.query(ctx, "SELECT "+columns+" FROM videos WHERE author = ? ORDER BY hash", author)
}

// Create adds a new video.
func (r *Repository) Create(ctx context.Context, v *model.Video) error {
	_, err := r.db.ExecContext(ctx, "INSERT INTO videos ("+columns+") VALUES (?, ?, ?, ?, ?, ?)",
		v.Hash, v.Name, v.Author, v.CreationYear, v.Duration, v.URL)
	if mysqlutil.IsDuplicate(err) {
		return repository.ErrAlreadyExists
	}
	return err
}

// Update replaces an existing video.
func (r *Repository) Update(ctx context.Context, v *model.Video) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE videos SET name = ?, author = ?, creation_year = ?, duration = ?, url = ? WHERE hash = ?",
		v.Name, v.Author, v.CreationYear, v.Duration, v.URL, v.Hash)
	if err != nil {
		return err
	}
	return mysqlutil.RequireRow(res, repository.ErrNotFound)
}

// Delete removes a video.
func (r *Repository) Delete(ctx context.Context, hash string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM videos WHERE hash = ?", hash)
	if err != nil {
		return err
	}
	return mysqlutil.RequireRow(res, repository.ErrNotFound)
}

// DeleteMany removes the given videos, ignoring hashes that are absent.
func (r *Repository) DeleteMany(ctx context.Context, hashes []string) error {
	if len(hashes) == 0 {
		return nil
	}
	args := make([]any, len(hashes))
	for i, h := range hashes {
		args[i] = h
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(hashes)), ", ")
	_, err := r.db.ExecContext(ctx, "DELETE FROM videos WHERE hash IN ("+placeholders+")", args...)
	return err
}

func (r *Repository) query(ctx context.Context, q string, args ...any) ([]model.Video, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []model.Video{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *v)
	}
	return res, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (*model.Video, error) {
	v := &model.Video{}
	if err := s.Scan(&v.Hash, &v.Name, &v.Author, &v.CreationYear, &v.Duration, &v.URL); err != nil {
		return nil, err
	}
	return v, nil
}
