package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cms_backend/internal/config"
	"cms_backend/internal/email"
	"cms_backend/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// In-memory sqlite is per-connection; keep the pool on one connection.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Person{},
		&models.Grade{},
		&models.Cost{},
	))
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-key"
	cfg.JWT.SessionTTL = 60
	cfg.Site.Protocol = "http"
	cfg.Site.Domain = "example.com"
	return cfg
}

// recordingEmailProvider captures outgoing mail so tests can assert on the
// emailed links.
type recordingEmailProvider struct {
	Activations []email.LinkData
	Resets      []email.LinkData
}

func (p *recordingEmailProvider) Send(to []string, subject, body string) error { return nil }

func (p *recordingEmailProvider) SendActivation(data email.LinkData) error {
	p.Activations = append(p.Activations, data)
	return nil
}

func (p *recordingEmailProvider) SendPasswordReset(data email.LinkData) error {
	p.Resets = append(p.Resets, data)
	return nil
}
