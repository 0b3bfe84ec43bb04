package repository

import (
	"github.com/yukikurage/project-tracker-api/internal/database"
	"github.com/yukikurage/project-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// List retrieves non-deleted users ordered by ID, setting filter.TotalCount
// before paging.
func (r *GormUserRepository) List(filter *Filter) ([]models.User, error) {
	query := r.db.Model(&models.User{}).Where("is_deleted = ?", false)

	if err := query.Count(&filter.TotalCount).Error; err != nil {
		return nil, err
	}

	var users []models.User
	err := query.
		Order("id ASC").
		Scopes(database.Paginate(filter.PageIndex, filter.PageSize)).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Create inserts a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a non-deleted user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ? AND is_deleted = ?", id, false).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Save persists changes to an existing user
func (r *GormUserRepository) Save(user *models.User) error {
	return r.db.Save(user).Error
}
