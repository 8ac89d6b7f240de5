package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"cms_backend/internal/config"
)

// GomailSender delivers mail over SMTP.
type GomailSender struct {
	cfg *config.Config
}

func NewGomailSender(cfg *config.Config) (*GomailSender, error) {
	if cfg.Email.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if cfg.Email.SMTPPort <= 0 || cfg.Email.SMTPPort > 65535 {
		return nil, fmt.Errorf("invalid SMTP port: %d", cfg.Email.SMTPPort)
	}
	return &GomailSender{cfg: cfg}, nil
}

func (s *GomailSender) Send(to []string, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.Email.FromEmail, s.cfg.Email.FromName)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(
		s.cfg.Email.SMTPHost,
		s.cfg.Email.SMTPPort,
		s.cfg.Email.SMTPUser,
		s.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

func (s *GomailSender) SendActivation(data LinkData) error {
	body, err := renderTemplate("activation", data)
	if err != nil {
		return err
	}
	return s.Send([]string{data.User.Email}, activationSubject, body)
}

func (s *GomailSender) SendPasswordReset(data LinkData) error {
	body, err := renderTemplate("reset", data)
	if err != nil {
		return err
	}
	return s.Send([]string{data.User.Email}, resetSubject, body)
}
