// Package repository provides the data access layer for the clinic front-desk service.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/salman-gigabit/PatientQueueBackend/internal/models"
)

// ErrDuplicateEmail reports a uniqueness violation on users.email. Callers
// must be able to tell a signup conflict apart from any other storage failure.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrStorageUnavailable reports that the service started without a database
// connection. Startup does not fail on that; individual operations do.
var ErrStorageUnavailable = errors.New("storage unavailable")

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository instance. db may be nil when
// the database was unreachable at startup; every operation then fails with
// ErrStorageUnavailable.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if r.db == nil {
		return nil, ErrStorageUnavailable
	}
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email %s: %w", email, err)
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if r.db == nil {
		return nil, ErrStorageUnavailable
	}
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by id %d: %w", id, err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if r.db == nil {
		return ErrStorageUnavailable
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}
