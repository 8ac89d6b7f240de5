package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cms_backend/internal/repositories"
	"cms_backend/internal/services/dto"
	"cms_backend/pkg/apperrors"
)

func newAuthTestEnv(t *testing.T) (AuthService, repositories.UserRepository, *recordingEmailProvider) {
	t.Helper()

	db := setupTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	mail := &recordingEmailProvider{}
	svc := NewAuthService(userRepo, mail, testConfig())
	return svc, userRepo, mail
}

func TestRegister_CreatesInactiveUserAndSendsOneEmail(t *testing.T) {
	svc, userRepo, mail := newAuthTestEnv(t)

	user, err := svc.Register(&dto.RegisterRequest{
		Email:     "new@test.com",
		Password:  "super_password123",
		FirstName: "Taro",
	})
	require.NoError(t, err)

	stored, err := userRepo.FindByEmail("new@test.com")
	assert.NoError(t, err)
	assert.False(t, stored.IsActive)
	assert.Equal(t, user.ID, stored.ID)

	// Exactly one activation mail carrying both link segments.
	require.Len(t, mail.Activations, 1)
	assert.NotEmpty(t, mail.Activations[0].UID)
	assert.NotEmpty(t, mail.Activations[0].Token)
	assert.Empty(t, mail.Resets)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthTestEnv(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "duplicate@test.com", Password: "super_password123"})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{Email: "duplicate@test.com", Password: "super_password123"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegister_WeakPassword(t *testing.T) {
	svc, _, _ := newAuthTestEnv(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "new@test.com", Password: "short"})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestActivate_Flow(t *testing.T) {
	svc, _, mail := newAuthTestEnv(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "new@test.com", Password: "super_password123"})
	require.NoError(t, err)
	require.Len(t, mail.Activations, 1)

	link := mail.Activations[0]
	user, err := svc.Activate(link.UID, link.Token)
	require.NoError(t, err)
	assert.True(t, user.IsActive)

	// The link is single-use: replaying it reads as an unknown account.
	_, err = svc.Activate(link.UID, link.Token)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestActivate_TamperedToken(t *testing.T) {
	svc, _, mail := newAuthTestEnv(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "new@test.com", Password: "super_password123"})
	require.NoError(t, err)
	link := mail.Activations[0]

	_, err = svc.Activate(link.UID, link.Token[:len(link.Token)-2]+"xx")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = svc.Activate("!!garbage!!", link.Token)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

// A reset link must not activate an account.
func TestActivate_RejectsResetToken(t *testing.T) {
	svc, userRepo, mail := newAuthTestEnv(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "new@test.com", Password: "super_password123"})
	require.NoError(t, err)
	activation := mail.Activations[0]

	user, err := userRepo.FindByEmail("new@test.com")
	require.NoError(t, err)
	require.NoError(t, userRepo.Activate(user.ID))

	require.NoError(t, svc.RequestPasswordReset(&dto.PasswordResetRequest{Email: "new@test.com"}))
	require.Len(t, mail.Resets, 1)

	_, err = svc.Activate(activation.UID, mail.Resets[0].Token)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestLogin(t *testing.T) {
	svc, _, mail := newAuthTestEnv(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "user@test.com", Password: "super_password123"})
	require.NoError(t, err)

	// A pending account cannot log in even with the right password.
	_, err = svc.Login(&dto.LoginRequest{Email: "user@test.com", Password: "super_password123"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotActive)

	link := mail.Activations[0]
	_, err = svc.Activate(link.UID, link.Token)
	require.NoError(t, err)

	session, err := svc.Login(&dto.LoginRequest{Email: "user@test.com", Password: "super_password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "user@test.com", session.User.Email)

	_, err = svc.Login(&dto.LoginRequest{Email: "user@test.com", Password: "WRONG-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@test.com", Password: "super_password123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	svc, _, mail := newAuthTestEnv(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "user@test.com", Password: "super_password123"})
	require.NoError(t, err)
	link := mail.Activations[0]
	activated, err := svc.Activate(link.UID, link.Token)
	require.NoError(t, err)

	// The old password must match; the failure names the form field.
	err = svc.ChangePassword(activated.ID, &dto.PasswordChangeRequest{
		OldPassword:  "WRONG-password",
		NewPassword1: "brand_new_password",
		NewPassword2: "brand_new_password",
	})
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	err = svc.ChangePassword(activated.ID, &dto.PasswordChangeRequest{
		OldPassword:  "super_password123",
		NewPassword1: "brand_new_password",
		NewPassword2: "brand_new_password",
	})
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Email: "user@test.com", Password: "brand_new_password"})
	assert.NoError(t, err)
	_, err = svc.Login(&dto.LoginRequest{Email: "user@test.com", Password: "super_password123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

// The reset endpoint never reveals whether an address is registered.
func TestRequestPasswordReset_SilentForUnknownOrPending(t *testing.T) {
	svc, _, mail := newAuthTestEnv(t)

	assert.NoError(t, svc.RequestPasswordReset(&dto.PasswordResetRequest{Email: "nobody@test.com"}))
	assert.Empty(t, mail.Resets)

	_, err := svc.Register(&dto.RegisterRequest{Email: "pending@test.com", Password: "super_password123"})
	require.NoError(t, err)

	// Pending accounts get no reset mail either.
	assert.NoError(t, svc.RequestPasswordReset(&dto.PasswordResetRequest{Email: "pending@test.com"}))
	assert.Empty(t, mail.Resets)
}

func TestResetPassword_Flow(t *testing.T) {
	svc, _, mail := newAuthTestEnv(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "user@test.com", Password: "super_password123"})
	require.NoError(t, err)
	link := mail.Activations[0]
	_, err = svc.Activate(link.UID, link.Token)
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset(&dto.PasswordResetRequest{Email: "user@test.com"}))
	require.Len(t, mail.Resets, 1)
	reset := mail.Resets[0]

	user, err := svc.CheckResetToken(reset.UID, reset.Token)
	require.NoError(t, err)
	assert.Equal(t, "user@test.com", user.Email)

	err = svc.ResetPassword(reset.UID, reset.Token, &dto.SetPasswordRequest{
		NewPassword1: "reset_password456",
		NewPassword2: "reset_password456",
	})
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Email: "user@test.com", Password: "reset_password456"})
	assert.NoError(t, err)
}

func TestResetPassword_BadToken(t *testing.T) {
	svc, _, _ := newAuthTestEnv(t)

	err := svc.ResetPassword("!!garbage!!", "not-a-token", &dto.SetPasswordRequest{
		NewPassword1: "reset_password456",
		NewPassword2: "reset_password456",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

// An activation token must not pass the reset check.
func TestCheckResetToken_RejectsActivationToken(t *testing.T) {
	svc, _, mail := newAuthTestEnv(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "user@test.com", Password: "super_password123"})
	require.NoError(t, err)
	link := mail.Activations[0]
	_, err = svc.Activate(link.UID, link.Token)
	require.NoError(t, err)

	_, err = svc.CheckResetToken(link.UID, link.Token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
