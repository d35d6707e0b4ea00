package service

import (
	"context"
	"fmt"

	"portfolio_api/internal/model"
	"portfolio_api/internal/repository"
	"portfolio_api/internal/utils"

	"github.com/rs/zerolog/log"
)

var seedProjects = []model.Project{
	{Title: "Dashboard UI", Category: "UI Design", Image: "https://picsum.photos/400/300?random=1"},
	{Title: "E-commerce App", Category: "Web Templates", Image: "https://picsum.photos/400/300?random=2"},
	{Title: "Brand Identity", Category: "Branding", Image: "https://picsum.photos/400/300?random=3"},
}

var seedExperience = []model.ExperienceEntry{
	{Type: model.ExperienceTypeEducation, Title: "University of Toronto", Role: "Student", Date: "Jan 2016 - Dec 2021", Description: "Major in Computer Science. Graduated with Honors."},
	{Type: model.ExperienceTypeEducation, Title: "Programming Course", Role: "Student", Date: "Jan 2016 - Dec 2021", Description: "Intensive bootcamp for Full Stack Development."},
	{Type: model.ExperienceTypeEducation, Title: "Web Developer Courses", Role: "Student", Date: "Jan 2016 - Dec 2021", Description: "Advanced React and Node.js certification."},
	{Type: model.ExperienceTypeWork, Title: "Lead Web Designer", Role: "Designer", Date: "Jan 2016 - Dec 2021", Description: "Led a team of 5 designers."},
	{Type: model.ExperienceTypeWork, Title: "Junior Web Designer", Role: "Designer", Date: "Jan 2016 - Dec 2021", Description: "Created mockups for clients."},
	{Type: model.ExperienceTypeWork, Title: "Senior Web Designer", Role: "Designer", Date: "Jan 2016 - Dec 2021", Description: "Specialized in accessibility and responsive design."},
}

// SeedService populates empty stores at startup
type SeedService interface {
	Seed(ctx context.Context, adminEmail, adminPassword string) error
}

type seedService struct {
	users      repository.UserRepository
	projects   repository.ProjectRepository
	experience repository.ExperienceRepository
}

// NewSeedService creates a new SeedService
func NewSeedService(users repository.UserRepository, projects repository.ProjectRepository, experience repository.ExperienceRepository) SeedService {
	return &seedService{users: users, projects: projects, experience: experience}
}

// Seed creates the administrator if missing and inserts the default projects
// and experience entries into empty tables. Safe to run on every start.
func (s *seedService) Seed(ctx context.Context, adminEmail, adminPassword string) error {
	if err := s.seedAdmin(ctx, adminEmail, adminPassword); err != nil {
		return err
	}

	projectCount, err := s.projects.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count projects: %w", err)
	}
	if projectCount == 0 {
		for _, p := range seedProjects {
			project := p
			if err := s.projects.Create(ctx, &project); err != nil {
				return fmt.Errorf("failed to seed projects: %w", err)
			}
		}
		log.Info().Int("count", len(seedProjects)).Msg("Seed projects created")
	}

	expCount, err := s.experience.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count experience: %w", err)
	}
	if expCount == 0 {
		for _, e := range seedExperience {
			entry := e
			if err := s.experience.Create(ctx, &entry); err != nil {
				return fmt.Errorf("failed to seed experience: %w", err)
			}
		}
		log.Info().Int("count", len(seedExperience)).Msg("Seed experience created")
	}

	return nil
}

func (s *seedService) seedAdmin(ctx context.Context, email, password string) error {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check admin user: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	created, err := s.users.Create(ctx, &model.User{Email: email, PasswordHash: hash, Role: model.RoleAdmin})
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	if created {
		log.Info().Str("email", email).Msg("Admin user created successfully")
	}
	return nil
}
