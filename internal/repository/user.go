// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"liberty/internal/cache"
	"liberty/internal/models"
	"liberty/internal/observability"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// cachedUser is the Redis representation of an account. The API model hides
// the password hash from JSON, but a cache hit must be a faithful copy of the
// row: serving a hashless copy back into Save would blank the stored hash.
type cachedUser struct {
	models.User
	PasswordHash string `json:"password_hash"`
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var cached cachedUser
	key := cache.UserKey(id)

	err := cache.Aside(ctx, key, &cached, cache.UserTTL, func() error {
		defer observability.TrackQuery("select", "users")()
		if err := r.db.WithContext(ctx).First(&cached.User, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewInternalError(err)
		}
		cached.PasswordHash = cached.User.Password
		return nil
	})

	if err != nil {
		return nil, err
	}

	user := cached.User
	user.Password = cached.PasswordHash
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	defer observability.TrackQuery("select", "users")()
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	defer observability.TrackQuery("insert", "users")()
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		// The unique index on email is the authority under concurrent signups.
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Email already registered")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	defer observability.TrackQuery("update", "users")()
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505; sqlite reports "UNIQUE constraint failed"
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
