package repository

import (
	"time"

	"github.com/yukikurage/project-tracker-api/internal/models"
)

// NoDueDate is the value reported for tasks without a due date so list
// consumers never deal with a nullable date.
var NoDueDate = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

// Filter carries the paging and predicate fields for a single list call.
// It is both input and output: the repository sets TotalCount to the size
// of the full matching set before paging is applied. A filter instance must
// not be shared across concurrent calls.
type Filter struct {
	PageIndex  int
	PageSize   int
	TotalCount int64
	Status     string
	Role       string
	UserID     uint64
	ProjectID  uint64
}

// TaskView is the task listing projection: it flattens the parent project
// name and the assignee display name into one row.
type TaskView struct {
	ID           uint64
	ProjectName  string
	Title        string
	Description  string
	Status       string
	AssigneeName string
	AssignedTo   uint64
	DueDate      time.Time
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// List retrieves a page of non-deleted projects matching the filter and
	// sets filter.TotalCount to the full matching count
	List(filter *Filter) ([]models.Project, error)

	// Create inserts a new project
	Create(project *models.Project) error

	// FindByID finds a non-deleted project by ID
	FindByID(id uint64) (*models.Project, error)

	// Save persists changes to an existing project
	Save(project *models.Project) error

	// FindMembership finds the non-deleted role row for a (user, project) pair
	FindMembership(userID, projectID uint64) (*models.UserProjectRole, error)

	// AddMembership inserts a new user-project role row
	AddMembership(membership *models.UserProjectRole) error

	// SaveMembership persists changes to an existing role row
	SaveMembership(membership *models.UserProjectRole) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// List retrieves a page of task views matching the filter and sets
	// filter.TotalCount to the full matching count
	List(filter *Filter) ([]TaskView, error)

	// Create inserts a new task
	Create(task *models.Task) error

	// FindByID finds a non-deleted task by ID
	FindByID(id uint64) (*models.Task, error)

	// FindViewByID finds the listing projection of a non-deleted task
	FindViewByID(id uint64) (*TaskView, error)

	// Save persists changes to an existing task
	Save(task *models.Task) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// List retrieves a page of non-deleted users and sets filter.TotalCount
	List(filter *Filter) ([]models.User, error)

	// Create inserts a new user
	Create(user *models.User) error

	// FindByID finds a non-deleted user by ID
	FindByID(id uint64) (*models.User, error)

	// Save persists changes to an existing user
	Save(user *models.User) error
}
