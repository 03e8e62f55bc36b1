package store

import (
	"context"
	"errors"
	"time"

	"employee-task-api/internal/models"

	"gorm.io/gorm"
)

// TaskStore persists the tasks collection. Tasks carry no uniqueness
// constraint, so writes never report ErrConflict.
type TaskStore struct {
	db *gorm.DB
}

func NewTaskStore(db *gorm.DB) *TaskStore {
	return &TaskStore{db: db}
}

func (s *TaskStore) List(ctx context.Context) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := s.db.WithContext(ctx).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskStore) Get(ctx context.Context, id string) (*models.Task, error) {
	if err := CheckID(id); err != nil {
		return nil, err
	}
	var task models.Task
	if err := s.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

// Insert stores a new task, stamping both timestamps.
func (s *TaskStore) Insert(ctx context.Context, task *models.Task) error {
	now := time.Now().UTC()
	task.ID = NewID()
	task.CreatedAt = now
	task.UpdatedAt = now
	return s.db.WithContext(ctx).Create(task).Error
}

// Replace overwrites the task matching id. CreatedAt is carried over from the
// stored record; UpdatedAt is refreshed whether or not anything else changed.
// The returned flag reflects the non-timestamp fields only.
func (s *TaskStore) Replace(ctx context.Context, id string, task *models.Task) (changed bool, err error) {
	if err := CheckID(id); err != nil {
		return false, err
	}
	var existing models.Task
	if err := s.db.WithContext(ctx).First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	task.ID = id
	task.CreatedAt = existing.CreatedAt
	task.UpdatedAt = time.Now().UTC()
	changed = !existing.SameContent(*task)
	if err := s.db.WithContext(ctx).Save(task).Error; err != nil {
		return false, err
	}
	return changed, nil
}

func (s *TaskStore) Delete(ctx context.Context, id string) error {
	if err := CheckID(id); err != nil {
		return err
	}
	res := s.db.WithContext(ctx).Delete(&models.Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
