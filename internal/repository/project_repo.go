package repository

import (
	"context"
	"fmt"

	"portfolio_api/internal/model"
)

// ProjectRepository defines operations for portfolio projects
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	FindAll(ctx context.Context) ([]model.Project, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type projectRepository struct {
	db DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db DB) ProjectRepository {
	return &projectRepository{db: db}
}

// Create inserts a project and fills in its generated id
func (r *projectRepository) Create(ctx context.Context, p *model.Project) error {
	sql := `INSERT INTO projects (title, category, image, link, description)
            VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, sql, p.Title, p.Category, p.Image, p.Link, p.Description).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// FindAll returns every project in insertion order
func (r *projectRepository) FindAll(ctx context.Context) ([]model.Project, error) {
	sql := `SELECT id, title, category, image, link, description FROM projects ORDER BY created_at ASC, id ASC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Category, &p.Image, &p.Link, &p.Description); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return projects, nil
}

// Delete removes a project. Deleting a missing id is not an error.
func (r *projectRepository) Delete(ctx context.Context, id string) error {
	sql := `DELETE FROM projects WHERE id = $1`
	if _, err := r.db.Exec(ctx, sql, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (r *projectRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM projects`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return n, nil
}
