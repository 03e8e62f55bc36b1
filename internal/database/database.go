package database

import (
	"fmt"

	"employee-task-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the SQLite database at path and runs migrations. The
// returned handle is passed explicitly to every component that needs it;
// there is no package-level connection.
// Using glebarez/sqlite which is a pure Go implementation (no CGO required).
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Employee{},
		&models.Task{},
	); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return db, nil
}
