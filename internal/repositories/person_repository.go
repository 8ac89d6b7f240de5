package repositories

import (
	"errors"

	"gorm.io/gorm"

	"cms_backend/internal/models"
)

var (
	ErrPersonNotFound   = errors.New("person not found")
	ErrPersonEmailTaken = errors.New("person email already taken")
)

type PersonRepository interface {
	FindAll() ([]models.Person, error)
	FindByID(id uint) (*models.Person, error)
	Save(person *models.Person) error
	Delete(id uint) error
}

type PersonRepositoryImpl struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) PersonRepository {
	return &PersonRepositoryImpl{db: db}
}

func (r *PersonRepositoryImpl) FindAll() ([]models.Person, error) {
	var persons []models.Person
	err := r.db.Order("id ASC").Find(&persons).Error
	return persons, err
}

func (r *PersonRepositoryImpl) FindByID(id uint) (*models.Person, error) {
	var person models.Person
	err := r.db.First(&person, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}
	return &person, nil
}

// Save creates or updates a person. The email must be unique across all other
// persons; the unique index backs this up under concurrent saves.
func (r *PersonRepositoryImpl) Save(person *models.Person) error {
	var existing models.Person
	err := r.db.Where("email = ? AND id <> ?", person.Email, person.ID).First(&existing).Error
	if err == nil {
		return ErrPersonEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := r.db.Save(person).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrPersonEmailTaken
		}
		return err
	}
	return nil
}

// Delete removes a person and all of its cost rows in one transaction. The
// application-level delete keeps the cascade working on databases where the
// FK constraint was not installed by an earlier migration.
func (r *PersonRepositoryImpl) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("person_id = ?", id).Delete(&models.Cost{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Person{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPersonNotFound
		}
		return nil
	})
}
