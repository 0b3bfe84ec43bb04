package dto

import (
	"time"

	"github.com/yukikurage/project-tracker-api/internal/repository"
)

// TaskDTO represents a task in API responses. It carries the flattened
// listing projection: parent project name and assignee display name.
type TaskDTO struct {
	ID           uint64    `json:"id"`
	ProjectName  string    `json:"project_name"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	AssigneeName string    `json:"assignee_name"`
	AssignedTo   uint64    `json:"assigned_to"`
	DueDate      time.Time `json:"due_date"`
}

// ToTaskDTO converts a repository task view to TaskDTO
func ToTaskDTO(view repository.TaskView) TaskDTO {
	return TaskDTO{
		ID:           view.ID,
		ProjectName:  view.ProjectName,
		Title:        view.Title,
		Description:  view.Description,
		Status:       view.Status,
		AssigneeName: view.AssigneeName,
		AssignedTo:   view.AssignedTo,
		DueDate:      view.DueDate,
	}
}

// ToTaskDTOs converts a slice of task views
func ToTaskDTOs(views []repository.TaskView) []TaskDTO {
	dtos := make([]TaskDTO, len(views))
	for i, v := range views {
		dtos[i] = ToTaskDTO(v)
	}
	return dtos
}
