package infra

import (
	"fmt"

	"candiqr/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection over the MySQL driver and runs
// AutoMigrate for the full schema. TranslateError is enabled so unique-index
// violations surface as gorm.ErrDuplicatedKey, which the attendance scan
// path relies on for its once-per-day guarantee.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// RunMigrations brings the schema up to date. Also used by the integration
// tests against a containerized MySQL.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Subject{},
		&model.Teacher{},
		&model.Class{},
		&model.ParentGuardian{},
		&model.Student{},
		&model.Schedule{},
		&model.Attendance{},
		&model.Location{},
	)
}
