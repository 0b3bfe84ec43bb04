package repository

import (
	"sort"

	"github.com/yukikurage/project-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// List retrieves projects matching the filter. Without a role or user
// predicate it scans the projects table directly; otherwise it goes through
// the membership relation so only projects the user holds a role on are
// visible. The result is deduplicated by project name (first occurrence in
// ascending-id order wins), counted, and then paged in memory because the
// dedup happens after the query.
func (r *GormProjectRepository) List(filter *Filter) ([]models.Project, error) {
	var rows []models.Project

	if filter.Role == "" && filter.UserID == 0 {
		query := r.db.Where("is_deleted = ?", false)
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if err := query.Order("id ASC").Find(&rows).Error; err != nil {
			return nil, err
		}
	} else {
		query := r.db.Model(&models.UserProjectRole{}).
			Select("projects.id, projects.name, projects.description, projects.status, projects.created_by, projects.created_at, projects.updated_at, projects.is_deleted").
			Joins("JOIN projects ON projects.id = user_project_roles.project_id").
			Where("projects.is_deleted = ?", false).
			Where("user_project_roles.is_deleted = ?", false)
		if filter.Role != "" {
			query = query.Where("user_project_roles.role = ?", filter.Role)
		}
		if filter.Status != "" {
			query = query.Where("projects.status = ?", filter.Status)
		}
		if filter.UserID != 0 {
			query = query.Where("user_project_roles.user_id = ?", filter.UserID)
		}
		if err := query.Order("projects.id ASC").Scan(&rows).Error; err != nil {
			return nil, err
		}
	}

	distinct := dedupeByName(rows)
	sort.SliceStable(distinct, func(i, j int) bool { return distinct[i].ID < distinct[j].ID })

	filter.TotalCount = int64(len(distinct))

	return pageProjects(distinct, filter.PageIndex, filter.PageSize), nil
}

// dedupeByName collapses projects sharing a name to the first occurrence.
// Multiple role rows for the same project produce duplicate entries in the
// membership branch, so this keeps one listing entry per name.
func dedupeByName(projects []models.Project) []models.Project {
	seen := make(map[string]struct{}, len(projects))
	distinct := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if _, ok := seen[p.Name]; ok {
			continue
		}
		seen[p.Name] = struct{}{}
		distinct = append(distinct, p)
	}
	return distinct
}

// pageProjects slices out one page, clamping a negative skip to zero.
func pageProjects(projects []models.Project, pageIndex, pageSize int) []models.Project {
	skip := (pageIndex - 1) * pageSize
	if skip < 0 {
		skip = 0
	}
	if skip >= len(projects) || pageSize <= 0 {
		return []models.Project{}
	}
	end := skip + pageSize
	if end > len(projects) {
		end = len(projects)
	}
	return projects[skip:end]
}

// Create inserts a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID finds a non-deleted project by ID
func (r *GormProjectRepository) FindByID(id uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.Where("id = ? AND is_deleted = ?", id, false).
		First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Save persists changes to an existing project
func (r *GormProjectRepository) Save(project *models.Project) error {
	return r.db.Save(project).Error
}

// FindMembership finds the non-deleted role row for a (user, project) pair
func (r *GormProjectRepository) FindMembership(userID, projectID uint64) (*models.UserProjectRole, error) {
	var membership models.UserProjectRole
	if err := r.db.Where("user_id = ? AND project_id = ? AND is_deleted = ?", userID, projectID, false).
		First(&membership).Error; err != nil {
		return nil, err
	}
	return &membership, nil
}

// AddMembership inserts a new user-project role row
func (r *GormProjectRepository) AddMembership(membership *models.UserProjectRole) error {
	return r.db.Create(membership).Error
}

// SaveMembership persists changes to an existing role row
func (r *GormProjectRepository) SaveMembership(membership *models.UserProjectRole) error {
	return r.db.Save(membership).Error
}
