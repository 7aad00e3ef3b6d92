package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/filmstudio/internal/apperror"
	"github.com/sakif/filmstudio/internal/model"
	"github.com/sakif/filmstudio/internal/repository"
)

// ProjectService serves the showcase.
type ProjectService struct {
	repo   repository.ProjectRepository
	logger *slog.Logger
}

func NewProjectService(repo repository.ProjectRepository, logger *slog.Logger) *ProjectService {
	return &ProjectService{
		repo:   repo,
		logger: logger,
	}
}

// List returns every project in creation order.
func (s *ProjectService) List(ctx context.Context) ([]model.Project, error) {
	projects, err := s.repo.GetAllProjects(ctx)
	if err != nil {
		s.logger.Error("failed to list projects", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

// Get returns one project. A missing project is reported as
// apperror.ErrNotFound here, because at the service boundary the caller asked
// for something specific.
func (s *ProjectService) Get(ctx context.Context, id int) (*model.Project, error) {
	p, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting project %d: %w", id, err)
	}
	if p == nil {
		return nil, apperror.NotFound("project", id)
	}
	return p, nil
}
