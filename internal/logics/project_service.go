package logics

import (
	"context"
	"fmt"

	"crayon-server/internal/failures"
	"crayon-server/internal/models"
	"crayon-server/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProjectService handles a team's sketch projects.
type ProjectService struct {
	projectRepo repositories.ProjectRepository
	teamRepo    repositories.TeamRepository
	logger      *zap.Logger
}

// NewProjectService creates a new instance of ProjectService.
func NewProjectService(projectRepo repositories.ProjectRepository, teamRepo repositories.TeamRepository, logger *zap.Logger) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		teamRepo:    teamRepo,
		logger:      logger,
	}
}

// CreateProject creates an empty project under a team.
func (s *ProjectService) CreateProject(ctx context.Context, title, teamID string) (*models.ProjectEntity, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	if team == nil {
		return nil, failures.NotFound("Team does not exist")
	}

	project := models.Project{
		ID:     uuid.NewString(),
		Title:  title,
		TeamID: teamID,
	}
	if err := project.SetSketchIDs([]string{}); err != nil {
		return nil, err
	}
	if err := s.projectRepo.Create(ctx, &project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return projectEntity(&project)
}

// ViewProjects lists a team's projects.
func (s *ProjectService) ViewProjects(ctx context.Context, teamID string) ([]models.ProjectEntity, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	if team == nil {
		return nil, failures.NotFound("Team does not exist")
	}

	projects, err := s.projectRepo.FindByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	entities := make([]models.ProjectEntity, 0, len(projects))
	for i := range projects {
		entity, err := projectEntity(&projects[i])
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}
	return entities, nil
}

// DeleteProject removes a project.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID string) (*models.ProjectEntity, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if project == nil {
		return nil, failures.NotFound("Project does not exist")
	}

	if err := s.projectRepo.Delete(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to delete project: %w", err)
	}

	return projectEntity(project)
}

func projectEntity(project *models.Project) (*models.ProjectEntity, error) {
	sketchIDs, err := project.DecodeSketchIDs()
	if err != nil {
		return nil, fmt.Errorf("failed to decode sketch ids: %w", err)
	}
	return &models.ProjectEntity{
		ID:        project.ID,
		Title:     project.Title,
		TeamID:    project.TeamID,
		SketchIDs: sketchIDs,
		CreateAt:  project.CreatedAt,
	}, nil
}
