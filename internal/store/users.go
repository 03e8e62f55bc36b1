package store

import (
	"context"
	"errors"

	"employee-task-api/internal/models"

	"gorm.io/gorm"
)

// UserStore persists registered accounts.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) FindByGithubLogin(ctx context.Context, login string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "github_login = ?", login).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Insert stores a new account. A taken username reports ErrConflict.
func (s *UserStore) Insert(ctx context.Context, user *models.User) error {
	user.ID = NewID()
	return classifyWrite(s.db.WithContext(ctx).Create(user).Error)
}
