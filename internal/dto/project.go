package dto

import (
	"time"

	"github.com/yukikurage/project-tracker-api/internal/models"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedBy   uint64    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MembershipDTO represents a user-project role row in API responses
type MembershipDTO struct {
	ID        uint64             `json:"id"`
	UserID    uint64             `json:"user_id"`
	ProjectID uint64             `json:"project_id"`
	Role      models.ProjectRole `json:"role"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Status:      project.Status,
		CreatedBy:   project.CreatedBy,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

// ToProjectDTOs converts a slice of Project models
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		dtos[i] = ToProjectDTO(p)
	}
	return dtos
}

// ToMembershipDTO converts a UserProjectRole model to MembershipDTO
func ToMembershipDTO(membership models.UserProjectRole) MembershipDTO {
	return MembershipDTO{
		ID:        membership.ID,
		UserID:    membership.UserID,
		ProjectID: membership.ProjectID,
		Role:      membership.Role,
	}
}
