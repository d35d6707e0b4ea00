package repository

import (
	"context"
	"fmt"

	"portfolio_api/internal/model"
)

// ExperienceRepository defines operations for education and work entries
type ExperienceRepository interface {
	Create(ctx context.Context, entry *model.ExperienceEntry) error
	FindAll(ctx context.Context) ([]model.ExperienceEntry, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type experienceRepository struct {
	db DB
}

// NewExperienceRepository creates a new ExperienceRepository
func NewExperienceRepository(db DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

func (r *experienceRepository) Create(ctx context.Context, e *model.ExperienceEntry) error {
	sql := `INSERT INTO experiences (type, title, role, date, description)
            VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, sql, e.Type, e.Title, e.Role, e.Date, e.Description).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("failed to create experience entry: %w", err)
	}
	return nil
}

func (r *experienceRepository) FindAll(ctx context.Context) ([]model.ExperienceEntry, error) {
	sql := `SELECT id, type, title, role, date, description FROM experiences ORDER BY created_at ASC, id ASC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query experience entries: %w", err)
	}
	defer rows.Close()

	entries := []model.ExperienceEntry{}
	for rows.Next() {
		var e model.ExperienceEntry
		if err := rows.Scan(&e.ID, &e.Type, &e.Title, &e.Role, &e.Date, &e.Description); err != nil {
			return nil, fmt.Errorf("failed to scan experience row: %w", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating experience rows: %w", err)
	}
	return entries, nil
}

// Delete removes an entry. Deleting a missing id is not an error.
func (r *experienceRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete experience entry: %w", err)
	}
	return nil
}

func (r *experienceRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM experiences`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count experience entries: %w", err)
	}
	return n, nil
}
