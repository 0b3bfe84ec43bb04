package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/yukikurage/project-tracker-api/internal/models"
	"github.com/yukikurage/project-tracker-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var validate = validator.New()

// UserService handles user lifecycle operations
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	ID        uint64
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
	Role      string
}

// UpdateUserInput represents input for updating a user
type UpdateUserInput struct {
	ID        uint64
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
	Role      string
}

// ListUsers returns one page of non-deleted users
func (s *UserService) ListUsers(filter *repository.Filter) ([]models.User, error) {
	return s.userRepo.List(filter)
}

// FindUserByID returns a single non-deleted user
func (s *UserService) FindUserByID(id uint64) (*models.User, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: user ID is required", ErrInvalidArgument)
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: failed to find user: %v", ErrPersistenceFailed, err)
	}
	return user, nil
}

// CreateUser persists a new user. Passwords are never stored as given; only
// the bcrypt hash is written.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	if input.ID != 0 {
		return nil, fmt.Errorf("%w: user ID must be zero on create", ErrInvalidArgument)
	}
	if err := validateUserFields(input.Email, input.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to hash password", ErrValidationFailed)
	}

	user := &models.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("%w: failed to create user: %v", ErrPersistenceFailed, err)
	}

	return user, nil
}

// UpdateUser overwrites the mutable fields of an existing user. Users carry
// no update timestamp, so nothing is stamped here.
func (s *UserService) UpdateUser(input UpdateUserInput) error {
	if input.ID == 0 {
		return fmt.Errorf("%w: user ID is required", ErrInvalidArgument)
	}
	if err := validateUserFields(input.Email, input.Password); err != nil {
		return err
	}

	user, err := s.userRepo.FindByID(input.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %d", ErrNotFound, input.ID)
		}
		return fmt.Errorf("%w: failed to find user: %v", ErrPersistenceFailed, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: failed to hash password", ErrValidationFailed)
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Username = input.Username
	user.Email = input.Email
	user.Role = input.Role
	user.PasswordHash = string(hash)

	if err := s.userRepo.Save(user); err != nil {
		return fmt.Errorf("%w: failed to update user: %v", ErrPersistenceFailed, err)
	}
	return nil
}

// DeleteUser soft deletes a user
func (s *UserService) DeleteUser(id uint64) error {
	if id == 0 {
		return fmt.Errorf("%w: user ID is required", ErrInvalidArgument)
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return fmt.Errorf("%w: failed to find user: %v", ErrPersistenceFailed, err)
	}

	user.IsDeleted = true

	if err := s.userRepo.Save(user); err != nil {
		return fmt.Errorf("%w: failed to delete user: %v", ErrPersistenceFailed, err)
	}
	return nil
}

func validateUserFields(email, password string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("%w: a valid email is required", ErrValidationFailed)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrValidationFailed)
	}
	return nil
}
