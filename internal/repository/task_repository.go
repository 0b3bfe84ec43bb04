package repository

import (
	"strings"
	"time"

	"github.com/yukikurage/project-tracker-api/internal/database"
	"github.com/yukikurage/project-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// taskRow is the raw join result before the nullable columns are folded
// into a TaskView.
type taskRow struct {
	ID          uint64
	Title       string
	Description string
	Status      string
	AssignedTo  *uint64
	DueDate     *time.Time
	ProjectName string
	FirstName   *string
	LastName    *string
}

const taskViewColumns = "tasks.id, tasks.title, tasks.description, tasks.status, " +
	"tasks.assigned_to, tasks.due_date, projects.name AS project_name, " +
	"users.first_name, users.last_name"

// List retrieves task views matching the filter. TotalCount is set from the
// full matching set before offset/limit paging is applied.
func (r *GormTaskRepository) List(filter *Filter) ([]TaskView, error) {
	query := r.db.Model(&models.Task{}).
		Where("tasks.is_deleted = ?", false)
	if filter.ProjectID != 0 {
		query = query.Where("tasks.project_id = ?", filter.ProjectID)
	}
	if filter.UserID != 0 {
		query = query.Where("tasks.assigned_to = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("tasks.status = ?", filter.Status)
	}

	if err := query.Count(&filter.TotalCount).Error; err != nil {
		return nil, err
	}

	var rows []taskRow
	err := query.
		Select(taskViewColumns).
		Joins("LEFT JOIN projects ON projects.id = tasks.project_id").
		Joins("LEFT JOIN users ON users.id = tasks.assigned_to").
		Order("tasks.id ASC").
		Scopes(database.Paginate(filter.PageIndex, filter.PageSize)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]TaskView, len(rows))
	for i, row := range rows {
		views[i] = row.view()
	}
	return views, nil
}

func (row taskRow) view() TaskView {
	v := TaskView{
		ID:          row.ID,
		ProjectName: row.ProjectName,
		Title:       row.Title,
		Description: row.Description,
		Status:      row.Status,
		DueDate:     NoDueDate,
	}
	if row.AssignedTo != nil {
		v.AssignedTo = *row.AssignedTo
	}
	if row.FirstName != nil || row.LastName != nil {
		v.AssigneeName = strings.TrimSpace(deref(row.FirstName) + " " + deref(row.LastName))
	}
	if row.DueDate != nil {
		v.DueDate = *row.DueDate
	}
	return v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Create inserts a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a non-deleted task by ID
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.Where("id = ? AND is_deleted = ?", id, false).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindViewByID finds the listing projection of a non-deleted task
func (r *GormTaskRepository) FindViewByID(id uint64) (*TaskView, error) {
	var row taskRow
	err := r.db.Model(&models.Task{}).
		Select(taskViewColumns).
		Joins("LEFT JOIN projects ON projects.id = tasks.project_id").
		Joins("LEFT JOIN users ON users.id = tasks.assigned_to").
		Where("tasks.id = ? AND tasks.is_deleted = ?", id, false).
		Take(&row).Error
	if err != nil {
		return nil, err
	}

	view := row.view()
	return &view, nil
}

// Save persists changes to an existing task
func (r *GormTaskRepository) Save(task *models.Task) error {
	return r.db.Save(task).Error
}
