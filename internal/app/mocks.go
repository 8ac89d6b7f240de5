package app

import "cms_backend/internal/email"

// MockEmailProvider discards all mail. Used for tests and local development
// without an SMTP server.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(to []string, subject, body string) error { return nil }
func (m *MockEmailProvider) SendActivation(data email.LinkData) error     { return nil }
func (m *MockEmailProvider) SendPasswordReset(data email.LinkData) error  { return nil }
