package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/project-tracker-api/internal/models"
	"github.com/yukikurage/project-tracker-api/internal/repository"
	"gorm.io/gorm"
)

// ProjectService handles project lifecycle and role transitions
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// CreateProjectInput represents input for creating a project
type CreateProjectInput struct {
	ID          uint64
	Name        string
	Description string
	Status      string
	CreatedBy   uint64
}

// UpdateProjectInput represents input for updating a project
type UpdateProjectInput struct {
	ID          uint64
	Name        string
	Description string
	Status      string
}

// ListProjects returns one page of projects matching the filter. Store
// errors propagate unchanged; the boundary reports them.
func (s *ProjectService) ListProjects(filter *repository.Filter) ([]models.Project, error) {
	return s.projectRepo.List(filter)
}

// CreateProject persists a new project. The identity is assigned by the
// store, so input carrying an ID is rejected.
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	if input.ID != 0 {
		return nil, fmt.Errorf("%w: project ID must be zero on create", ErrInvalidArgument)
	}
	if input.Name == "" || input.Description == "" {
		return nil, fmt.Errorf("%w: name and description are required", ErrValidationFailed)
	}

	status := input.Status
	if status == "" {
		status = models.ProjectStatusDefault
	}

	project := &models.Project{
		Name:        input.Name,
		Description: input.Description,
		Status:      status,
		CreatedBy:   input.CreatedBy,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("%w: failed to create project: %v", ErrPersistenceFailed, err)
	}

	return project, nil
}

// UpdateProject overwrites the mutable fields of an existing project and
// stamps the update time.
func (s *ProjectService) UpdateProject(input UpdateProjectInput) error {
	if input.ID == 0 {
		return fmt.Errorf("%w: project ID is required", ErrInvalidArgument)
	}

	project, err := s.findProject(input.ID)
	if err != nil {
		return err
	}

	project.Name = input.Name
	project.Description = input.Description
	project.Status = input.Status
	project.UpdatedAt = time.Now()

	if err := s.projectRepo.Save(project); err != nil {
		return fmt.Errorf("%w: failed to update project: %v", ErrPersistenceFailed, err)
	}
	return nil
}

// DeleteProject soft deletes a project. The row stays in the store and is
// excluded from every guarded read from then on.
func (s *ProjectService) DeleteProject(id uint64) error {
	if id == 0 {
		return fmt.Errorf("%w: project ID is required", ErrInvalidArgument)
	}

	project, err := s.findProject(id)
	if err != nil {
		return err
	}

	project.IsDeleted = true
	project.UpdatedAt = time.Now()

	if err := s.projectRepo.Save(project); err != nil {
		return fmt.Errorf("%w: failed to delete project: %v", ErrPersistenceFailed, err)
	}
	return nil
}

// UpdateUserProjectRole changes the role a user holds on a project. The new
// role string is taken as-is; the canonical set is a convention, not a
// constraint.
func (s *ProjectService) UpdateUserProjectRole(userID, projectID uint64, newRole models.ProjectRole) error {
	if userID == 0 || projectID == 0 {
		return fmt.Errorf("%w: user ID and project ID are required", ErrInvalidArgument)
	}

	membership, err := s.projectRepo.FindMembership(userID, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: no role found for user %d on project %d", ErrNotFound, userID, projectID)
		}
		return fmt.Errorf("%w: failed to find membership: %v", ErrPersistenceFailed, err)
	}

	membership.Role = newRole

	if err := s.projectRepo.SaveMembership(membership); err != nil {
		return fmt.Errorf("%w: failed to update role: %v", ErrPersistenceFailed, err)
	}
	return nil
}

// AddProjectMember grants a user a role on a project. The composite unique
// index on (user_id, project_id) rejects duplicate memberships.
func (s *ProjectService) AddProjectMember(userID, projectID uint64, role models.ProjectRole) (*models.UserProjectRole, error) {
	if userID == 0 || projectID == 0 {
		return nil, fmt.Errorf("%w: user ID and project ID are required", ErrInvalidArgument)
	}
	if role == "" {
		role = models.RoleGuest
	}

	membership := &models.UserProjectRole{
		UserID:    userID,
		ProjectID: projectID,
		Role:      role,
	}

	if err := s.projectRepo.AddMembership(membership); err != nil {
		return nil, fmt.Errorf("%w: failed to add member: %v", ErrPersistenceFailed, err)
	}
	return membership, nil
}

func (s *ProjectService) findProject(id uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: project %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: failed to find project: %v", ErrPersistenceFailed, err)
	}
	return project, nil
}
