package repositories

import (
	"errors"

	"gorm.io/gorm"

	"cms_backend/internal/models"
)

var ErrCostNotFound = errors.New("cost not found")

type CostRepository interface {
	FindByPerson(personID uint) ([]models.Cost, error)
	FindByID(id uint) (*models.Cost, error)
	Save(cost *models.Cost) error
	Delete(id uint) error
}

type CostRepositoryImpl struct {
	db *gorm.DB
}

func NewCostRepository(db *gorm.DB) CostRepository {
	return &CostRepositoryImpl{db: db}
}

func (r *CostRepositoryImpl) FindByPerson(personID uint) ([]models.Cost, error) {
	var costs []models.Cost
	err := r.db.Preload("Grade").
		Where("person_id = ?", personID).
		Order("id ASC").
		Find(&costs).Error
	return costs, err
}

func (r *CostRepositoryImpl) FindByID(id uint) (*models.Cost, error) {
	var cost models.Cost
	err := r.db.First(&cost, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCostNotFound
		}
		return nil, err
	}
	return &cost, nil
}

func (r *CostRepositoryImpl) Save(cost *models.Cost) error {
	return r.db.Save(cost).Error
}

func (r *CostRepositoryImpl) Delete(id uint) error {
	result := r.db.Where("id = ?", id).Delete(&models.Cost{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCostNotFound
	}
	return nil
}
