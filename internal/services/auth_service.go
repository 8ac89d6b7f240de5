package services

import (
	"time"

	"cms_backend/internal/auth"
	"cms_backend/internal/config"
	"cms_backend/internal/email"
	"cms_backend/internal/logger"
	"cms_backend/internal/models"
	"cms_backend/internal/repositories"
	"cms_backend/internal/services/dto"
	"cms_backend/pkg/apperrors"
)

const (
	activationTokenTTL = 24 * time.Hour
	resetTokenTTL      = time.Hour
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	Activate(uid, token string) (*models.User, error)
	Login(req *dto.LoginRequest) (*dto.SessionResponse, error)
	ChangePassword(userID uint, req *dto.PasswordChangeRequest) error
	RequestPasswordReset(req *dto.PasswordResetRequest) error
	CheckResetToken(uid, token string) (*models.User, error)
	ResetPassword(uid, token string, req *dto.SetPasswordRequest) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
	cfg           *config.Config
}

func NewAuthService(userRepo repositories.UserRepository, emailProvider email.Provider, cfg *config.Config) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
		cfg:           cfg,
	}
}

// Register creates a pending account and sends exactly one verification email.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*models.User, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		IsActive:     false,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	s.sendLinkEmail(user, auth.PurposeActivate)

	return user, nil
}

// Activate completes registration from the emailed link. Every failure mode
// (bad uid encoding, tampered or expired token, unknown user, already active)
// collapses into the same not-found error so the link leaks nothing.
func (s *AuthServiceImpl) Activate(uid, token string) (*models.User, error) {
	id, err := auth.DecodeUID(uid)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	claims, err := auth.ParseMailToken(token, auth.PurposeActivate, []byte(s.cfg.JWT.Secret))
	if err != nil || claims.UserID != id {
		return nil, apperrors.ErrUserNotFound
	}

	user, err := s.userRepo.FindByIDAndEmail(id, claims.Email)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if user.IsActive {
		return nil, apperrors.ErrUserNotFound
	}

	if err := s.userRepo.Activate(user.ID); err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	user.IsActive = true
	return user, nil
}

// Login checks credentials and issues a session token.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.SessionResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrUserNotActive
	}

	ttl := time.Duration(s.cfg.JWT.SessionTTL) * time.Minute
	token, err := auth.GenerateSessionToken(user.ID, user.IsSuperuser, []byte(s.cfg.JWT.Secret), ttl)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.SessionResponse{
		Token: token,
		User:  dto.NewUserDTO(user),
	}, nil
}

// ChangePassword replaces the password of a logged-in user after verifying
// the old one.
func (s *AuthServiceImpl) ChangePassword(userID uint, req *dto.PasswordChangeRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return apperrors.ValidationError(map[string]string{
			"old_password": "Your old password was entered incorrectly",
		})
	}

	if err := auth.ValidatePassword(req.NewPassword1); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.NewPassword1)
	if err != nil {
		return apperrors.InternalError(err)
	}

	return s.userRepo.UpdatePassword(user.ID, hash)
}

// RequestPasswordReset mails a reset link when the address belongs to an
// active account. The response never reveals whether the email exists.
func (s *AuthServiceImpl) RequestPasswordReset(req *dto.PasswordResetRequest) error {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil || !user.IsActive {
		return nil
	}

	s.sendLinkEmail(user, auth.PurposeReset)
	return nil
}

// CheckResetToken validates a reset link and returns the target user.
func (s *AuthServiceImpl) CheckResetToken(uid, token string) (*models.User, error) {
	id, err := auth.DecodeUID(uid)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, err := auth.ParseMailToken(token, auth.PurposeReset, []byte(s.cfg.JWT.Secret))
	if err != nil || claims.UserID != id {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByIDAndEmail(id, claims.Email)
	if err != nil || !user.IsActive {
		return nil, apperrors.ErrInvalidToken
	}

	return user, nil
}

// ResetPassword sets a new password for the user identified by the reset link.
func (s *AuthServiceImpl) ResetPassword(uid, token string, req *dto.SetPasswordRequest) error {
	user, err := s.CheckResetToken(uid, token)
	if err != nil {
		return err
	}

	if err := auth.ValidatePassword(req.NewPassword1); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.NewPassword1)
	if err != nil {
		return apperrors.InternalError(err)
	}

	return s.userRepo.UpdatePassword(user.ID, hash)
}

// sendLinkEmail delivers one activation or reset message. A delivery failure
// is logged but does not fail the surrounding request.
func (s *AuthServiceImpl) sendLinkEmail(user *models.User, purpose auth.MailTokenPurpose) {
	if s.emailProvider == nil {
		return
	}

	ttl := activationTokenTTL
	if purpose == auth.PurposeReset {
		ttl = resetTokenTTL
	}

	token, err := auth.GenerateMailToken(user.ID, user.Email, purpose, []byte(s.cfg.JWT.Secret), ttl)
	if err != nil {
		logger.Error("failed to sign mail token", "error", err, "user_id", user.ID)
		return
	}

	data := email.LinkData{
		Protocol: s.cfg.Site.Protocol,
		Domain:   s.cfg.Site.Domain,
		UID:      auth.EncodeUID(user.ID),
		Token:    token,
		User:     user,
	}

	if purpose == auth.PurposeActivate {
		err = s.emailProvider.SendActivation(data)
	} else {
		err = s.emailProvider.SendPasswordReset(data)
	}
	if err != nil {
		logger.Error("failed to send email", "error", err, "purpose", string(purpose), "user_id", user.ID)
	}
}
