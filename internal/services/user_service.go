package services

import (
	"cms_backend/internal/auth"
	"cms_backend/internal/models"
	"cms_backend/internal/repositories"
	"cms_backend/internal/services/dto"
	"cms_backend/pkg/apperrors"
)

type UserService interface {
	GetUser(actor *auth.SessionClaims, id uint) (*models.User, error)
	UpdateUser(actor *auth.SessionClaims, id uint, req *dto.UserUpdateRequest) (*models.User, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// authorize enforces the owner-or-superuser rule for user pages. Violations
// are raised as forbidden, never silently redirected.
func (s *UserServiceImpl) authorize(actor *auth.SessionClaims, id uint) error {
	if actor.UserID == id || actor.IsSuperuser {
		return nil
	}
	return apperrors.ErrForbidden
}

func (s *UserServiceImpl) GetUser(actor *auth.SessionClaims, id uint) (*models.User, error) {
	if err := s.authorize(actor, id); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateUser(actor *auth.SessionClaims, id uint, req *dto.UserUpdateRequest) (*models.User, error) {
	if err := s.authorize(actor, id); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Email != user.Email {
		if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}

	user.Email = req.Email
	user.FirstName = req.FirstName
	user.LastName = req.LastName

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
