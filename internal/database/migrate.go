package database

import (
	"time"

	"gorm.io/gorm"

	"cms_backend/internal/logger"
	"cms_backend/internal/models"
)

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Person{},
		&models.Grade{},
		&models.Cost{},
	)
}

// SeedGrades inserts the default grade catalog when the table is empty:
// G1..G7 for the home department and the same ladder for members on loan
// from other departments.
func SeedGrades(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Grade{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	start := time.Date(2020, time.April, 1, 0, 0, 0, 0, time.UTC)
	grades := make([]models.Grade, 0, 14)
	for _, g := range []int{
		models.GradeInG1, models.GradeInG2, models.GradeInG3, models.GradeInG4,
		models.GradeInG5, models.GradeInG6, models.GradeInG7,
		models.GradeOutG1, models.GradeOutG2, models.GradeOutG3, models.GradeOutG4,
		models.GradeOutG5, models.GradeOutG6, models.GradeOutG7,
	} {
		grades = append(grades, models.Grade{Grade: g, StartYM: start})
	}

	if err := db.Create(&grades).Error; err != nil {
		return err
	}
	logger.Info("Seeded default grades", "count", len(grades))
	return nil
}
