package email

import "cms_backend/internal/models"

// LinkData is the render context for emailed links.
type LinkData struct {
	Protocol string
	Domain   string
	UID      string
	Token    string
	User     *models.User
}

// Provider sends the application's transactional mail.
type Provider interface {
	// Send delivers a plain message.
	Send(to []string, subject, body string) error

	// SendActivation delivers the "verify your account" message.
	SendActivation(data LinkData) error

	// SendPasswordReset delivers the "reset your password" message.
	SendPasswordReset(data LinkData) error
}
