package store

import (
	"context"
	"errors"

	"employee-task-api/internal/models"

	"gorm.io/gorm"
)

// EmployeeStore persists the employees collection.
type EmployeeStore struct {
	db *gorm.DB
}

func NewEmployeeStore(db *gorm.DB) *EmployeeStore {
	return &EmployeeStore{db: db}
}

// List returns every employee in storage iteration order.
func (s *EmployeeStore) List(ctx context.Context) ([]models.Employee, error) {
	employees := make([]models.Employee, 0)
	if err := s.db.WithContext(ctx).Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// Get returns the employee matching id.
func (s *EmployeeStore) Get(ctx context.Context, id string) (*models.Employee, error) {
	if err := CheckID(id); err != nil {
		return nil, err
	}
	var employee models.Employee
	if err := s.db.WithContext(ctx).First(&employee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}

// Insert stores a new employee under a fresh identifier. A duplicate email
// reports ErrConflict.
func (s *EmployeeStore) Insert(ctx context.Context, employee *models.Employee) error {
	employee.ID = NewID()
	return classifyWrite(s.db.WithContext(ctx).Create(employee).Error)
}

// Replace overwrites the employee matching id with the given record. The
// returned flag reports whether the replacement differs from what was stored.
func (s *EmployeeStore) Replace(ctx context.Context, id string, employee *models.Employee) (changed bool, err error) {
	if err := CheckID(id); err != nil {
		return false, err
	}
	var existing models.Employee
	if err := s.db.WithContext(ctx).First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	employee.ID = id
	changed = !existing.SameContent(*employee)
	if err := classifyWrite(s.db.WithContext(ctx).Save(employee).Error); err != nil {
		return false, err
	}
	return changed, nil
}

// Delete removes the employee matching id.
func (s *EmployeeStore) Delete(ctx context.Context, id string) error {
	if err := CheckID(id); err != nil {
		return err
	}
	res := s.db.WithContext(ctx).Delete(&models.Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
