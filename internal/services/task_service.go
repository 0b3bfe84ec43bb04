package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/project-tracker-api/internal/models"
	"github.com/yukikurage/project-tracker-api/internal/repository"
	"gorm.io/gorm"
)

// TaskService handles task lifecycle operations
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	ProjectID   uint64
	AssignedTo  *uint64
	DueDate     *time.Time
}

// UpdateTaskInput represents input for updating a task. The whole mutable
// field set is overwritten, matching the update semantics of projects.
type UpdateTaskInput struct {
	ID          uint64
	Title       string
	Description string
	Status      string
	AssignedTo  *uint64
	DueDate     *time.Time
}

// ListTasks returns one page of task views matching the filter
func (s *TaskService) ListTasks(filter *repository.Filter) ([]repository.TaskView, error) {
	return s.taskRepo.List(filter)
}

// GetTaskByID returns the listing projection of a single task
func (s *TaskService) GetTaskByID(id uint64) (*repository.TaskView, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: task ID is required", ErrInvalidArgument)
	}

	view, err := s.taskRepo.FindViewByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: task %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: failed to find task: %v", ErrPersistenceFailed, err)
	}
	return view, nil
}

// CreateTask persists a new task
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidationFailed)
	}

	status := input.Status
	if status == "" {
		status = models.TaskStatusDefault
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		ProjectID:   input.ProjectID,
		AssignedTo:  input.AssignedTo,
		DueDate:     input.DueDate,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("%w: failed to create task: %v", ErrPersistenceFailed, err)
	}

	return task, nil
}

// UpdateTask overwrites the mutable fields of an existing task and stamps
// the update time.
func (s *TaskService) UpdateTask(input UpdateTaskInput) error {
	if input.ID == 0 {
		return fmt.Errorf("%w: task ID is required", ErrInvalidArgument)
	}

	task, err := s.taskRepo.FindByID(input.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: task %d", ErrNotFound, input.ID)
		}
		return fmt.Errorf("%w: failed to find task: %v", ErrPersistenceFailed, err)
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Status = input.Status
	task.AssignedTo = input.AssignedTo
	task.DueDate = input.DueDate
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Save(task); err != nil {
		return fmt.Errorf("%w: failed to update task: %v", ErrPersistenceFailed, err)
	}
	return nil
}
