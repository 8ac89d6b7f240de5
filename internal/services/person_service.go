package services

import (
	"cms_backend/internal/models"
	"cms_backend/internal/repositories"
	"cms_backend/internal/services/dto"
	"cms_backend/pkg/apperrors"
)

type PersonService interface {
	List() ([]models.Person, error)
	Get(id uint) (*models.Person, error)
	// Save creates when id is zero, updates otherwise.
	Save(id uint, form *dto.PersonForm) (*models.Person, error)
	Delete(id uint) error
}

type PersonServiceImpl struct {
	personRepo repositories.PersonRepository
}

func NewPersonService(personRepo repositories.PersonRepository) PersonService {
	return &PersonServiceImpl{personRepo: personRepo}
}

func (s *PersonServiceImpl) List() ([]models.Person, error) {
	persons, err := s.personRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return persons, nil
}

func (s *PersonServiceImpl) Get(id uint) (*models.Person, error) {
	person, err := s.personRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPersonNotFound) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return person, nil
}

func (s *PersonServiceImpl) Save(id uint, form *dto.PersonForm) (*models.Person, error) {
	person := &models.Person{}
	if id != 0 {
		existing, err := s.Get(id)
		if err != nil {
			return nil, err
		}
		person = existing
	}

	person.Name = form.Name
	person.Email = form.Email

	if err := s.personRepo.Save(person); err != nil {
		if apperrors.Is(err, repositories.ErrPersonEmailTaken) {
			return nil, apperrors.ValidationError(map[string]string{
				"email": "A person with this email already exists",
			})
		}
		return nil, apperrors.InternalError(err)
	}
	return person, nil
}

func (s *PersonServiceImpl) Delete(id uint) error {
	if err := s.personRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrPersonNotFound) {
			return apperrors.ErrPersonNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
