package services

import (
	"time"

	"cms_backend/internal/models"
	"cms_backend/internal/repositories"
	"cms_backend/internal/services/dto"
	"cms_backend/pkg/apperrors"
)

type CostService interface {
	// ListForPerson returns the parent person and that person's costs.
	ListForPerson(personID uint) (*models.Person, []models.Cost, error)
	// FormContext resolves everything the cost form needs: the parent, the
	// cost being edited (nil on create) and the grade choices.
	FormContext(personID, costID uint) (*models.Person, *models.Cost, []models.Grade, error)
	// Save creates when costID is zero, updates otherwise. The stored cost
	// always belongs to personID regardless of the submitted form.
	Save(personID, costID uint, form *dto.CostForm) (*models.Cost, error)
	Delete(costID uint) error
}

type CostServiceImpl struct {
	personRepo repositories.PersonRepository
	costRepo   repositories.CostRepository
	gradeRepo  repositories.GradeRepository
}

func NewCostService(
	personRepo repositories.PersonRepository,
	costRepo repositories.CostRepository,
	gradeRepo repositories.GradeRepository,
) CostService {
	return &CostServiceImpl{
		personRepo: personRepo,
		costRepo:   costRepo,
		gradeRepo:  gradeRepo,
	}
}

func (s *CostServiceImpl) getPerson(personID uint) (*models.Person, error) {
	person, err := s.personRepo.FindByID(personID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPersonNotFound) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return person, nil
}

func (s *CostServiceImpl) ListForPerson(personID uint) (*models.Person, []models.Cost, error) {
	person, err := s.getPerson(personID)
	if err != nil {
		return nil, nil, err
	}

	costs, err := s.costRepo.FindByPerson(person.ID)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}
	return person, costs, nil
}

func (s *CostServiceImpl) FormContext(personID, costID uint) (*models.Person, *models.Cost, []models.Grade, error) {
	person, err := s.getPerson(personID)
	if err != nil {
		return nil, nil, nil, err
	}

	var cost *models.Cost
	if costID != 0 {
		cost, err = s.costRepo.FindByID(costID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrCostNotFound) {
				return nil, nil, nil, apperrors.ErrCostNotFound
			}
			return nil, nil, nil, apperrors.InternalError(err)
		}
	}

	grades, err := s.gradeRepo.FindAll()
	if err != nil {
		return nil, nil, nil, apperrors.InternalError(err)
	}

	return person, cost, grades, nil
}

func (s *CostServiceImpl) Save(personID, costID uint, form *dto.CostForm) (*models.Cost, error) {
	person, err := s.getPerson(personID)
	if err != nil {
		return nil, err
	}

	cost := &models.Cost{}
	if costID != 0 {
		existing, err := s.costRepo.FindByID(costID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrCostNotFound) {
				return nil, apperrors.ErrCostNotFound
			}
			return nil, apperrors.InternalError(err)
		}
		cost = existing
	}

	if _, err := s.gradeRepo.FindByID(form.GradeID); err != nil {
		if apperrors.Is(err, repositories.ErrGradeNotFound) {
			return nil, apperrors.ValidationError(map[string]string{
				"grade": "Select a valid grade",
			})
		}
		return nil, apperrors.InternalError(err)
	}

	startYM, err := parseYM(form.StartYM)
	if err != nil {
		return nil, apperrors.ValidationError(map[string]string{
			"start_ym": "Enter a valid date",
		})
	}

	var endYM *time.Time
	if form.EndYM != "" {
		t, err := parseYM(form.EndYM)
		if err != nil {
			return nil, apperrors.ValidationError(map[string]string{
				"end_ym": "Enter a valid date",
			})
		}
		endYM = &t
	}

	// The parent comes from the URL; a person id smuggled into the form is
	// ignored.
	cost.PersonID = person.ID
	cost.GradeID = form.GradeID
	cost.Company = form.Company
	cost.DeptCategory = models.DeptCategory(form.DeptCategory)
	cost.Amount = form.Amount
	cost.StartYM = startYM
	cost.EndYM = endYM
	cost.RecordType = models.RecordType(form.RecordType)

	if err := s.costRepo.Save(cost); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return cost, nil
}

func (s *CostServiceImpl) Delete(costID uint) error {
	if err := s.costRepo.Delete(costID); err != nil {
		if apperrors.Is(err, repositories.ErrCostNotFound) {
			return apperrors.ErrCostNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// parseYM accepts the year-month formats the cost forms post.
func parseYM(s string) (time.Time, error) {
	layouts := []string{"2006-01", "2006-01-02", time.RFC3339}

	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
