package repositories

import (
	"errors"

	"gorm.io/gorm"

	"cms_backend/internal/models"
)

var ErrGradeNotFound = errors.New("grade not found")

type GradeRepository interface {
	FindAll() ([]models.Grade, error)
	FindByID(id uint) (*models.Grade, error)
}

type GradeRepositoryImpl struct {
	db *gorm.DB
}

func NewGradeRepository(db *gorm.DB) GradeRepository {
	return &GradeRepositoryImpl{db: db}
}

func (r *GradeRepositoryImpl) FindAll() ([]models.Grade, error) {
	var grades []models.Grade
	err := r.db.Order("id ASC").Find(&grades).Error
	return grades, err
}

func (r *GradeRepositoryImpl) FindByID(id uint) (*models.Grade, error) {
	var grade models.Grade
	err := r.db.First(&grade, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGradeNotFound
		}
		return nil, err
	}
	return &grade, nil
}
