package service

import (
	"context"
	"fmt"

	"portfolio_api/internal/model"
	"portfolio_api/internal/repository"

	"github.com/google/uuid"
)

// ProjectService defines operations for portfolio projects
type ProjectService interface {
	List(ctx context.Context) ([]model.Project, error)
	Create(ctx context.Context, req model.CreateProjectRequest) (*model.Project, error)
	Delete(ctx context.Context, id string) error
}

type projectService struct {
	repo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectService{repo: repo}
}

func (s *projectService) List(ctx context.Context) ([]model.Project, error) {
	projects, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *projectService) Create(ctx context.Context, req model.CreateProjectRequest) (*model.Project, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	project := req.ToProject()
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project in repo: %w", err)
	}
	return project, nil
}

// Delete removes a project. Unknown or malformed ids succeed silently.
func (s *projectService) Delete(ctx context.Context, id string) error {
	if !isStoreID(id) {
		return nil
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// ExperienceService defines operations for experience entries
type ExperienceService interface {
	List(ctx context.Context) ([]model.ExperienceEntry, error)
	Create(ctx context.Context, req model.CreateExperienceRequest) (*model.ExperienceEntry, error)
	Delete(ctx context.Context, id string) error
}

type experienceService struct {
	repo repository.ExperienceRepository
}

// NewExperienceService creates a new ExperienceService
func NewExperienceService(repo repository.ExperienceRepository) ExperienceService {
	return &experienceService{repo: repo}
}

func (s *experienceService) List(ctx context.Context) ([]model.ExperienceEntry, error) {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list experience: %w", err)
	}
	return entries, nil
}

func (s *experienceService) Create(ctx context.Context, req model.CreateExperienceRequest) (*model.ExperienceEntry, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entry := req.ToEntry()
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create experience entry in repo: %w", err)
	}
	return entry, nil
}

func (s *experienceService) Delete(ctx context.Context, id string) error {
	if !isStoreID(id) {
		return nil
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete experience entry: %w", err)
	}
	return nil
}

// isStoreID reports whether id could name a stored row at all.
func isStoreID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
