package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cms_backend/internal/auth"
	"cms_backend/internal/config"
	"cms_backend/internal/email"
	"cms_backend/internal/handlers"
	"cms_backend/internal/middleware"
	"cms_backend/internal/models"
	"cms_backend/internal/repositories"
	"cms_backend/internal/routes"
	"cms_backend/internal/services"
	"cms_backend/internal/validator"
)

// recordingEmailProvider captures outgoing mail so tests can follow the
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

// testServer runs the real route table over an in-memory database.
type testServer struct {
	Router *gin.Engine
	DB     *gorm.DB
	Cfg    *config.Config
	Mail   *recordingEmailProvider
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Person{},
		&models.Grade{},
		&models.Cost{},
	))

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-key"
	cfg.JWT.SessionTTL = 60
	cfg.Site.Protocol = "http"
	cfg.Site.Domain = "example.com"

	mail := &recordingEmailProvider{}

	userRepo := repositories.NewUserRepository(db)
	personRepo := repositories.NewPersonRepository(db)
	costRepo := repositories.NewCostRepository(db)
	gradeRepo := repositories.NewGradeRepository(db)

	baseHandler := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		AuthHandler:   handlers.NewAuthHandler(baseHandler, services.NewAuthService(userRepo, mail, cfg), cfg),
		UserHandler:   handlers.NewUserHandler(baseHandler, services.NewUserService(userRepo)),
		PersonHandler: handlers.NewPersonHandler(baseHandler, services.NewPersonService(personRepo)),
		CostHandler:   handlers.NewCostHandler(baseHandler, services.NewCostService(personRepo, costRepo, gradeRepo)),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	routes.RegisterRoutes(router, appHandlers, cfg)

	return &testServer{Router: router, DB: db, Cfg: cfg, Mail: mail}
}

// sendForm posts url-encoded form data, optionally with a session token.
func (ts *testServer) sendForm(t *testing.T, method, path, token string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	}

	rec := httptest.NewRecorder()
	ts.Router.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) get(t *testing.T, path, token string) *httptest.ResponseRecorder {
	return ts.sendForm(t, http.MethodGet, path, token, nil)
}

// createUser inserts an account directly with a bcrypt-hashed password.
func (ts *testServer) createUser(t *testing.T, emailAddr, password string, active, superuser bool) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Email:        emailAddr,
		PasswordHash: hash,
		IsActive:     active,
		IsSuperuser:  superuser,
	}
	require.NoError(t, ts.DB.Create(user).Error)
	return user
}

// login authenticates through the real endpoint and returns the session token.
func (ts *testServer) login(t *testing.T, emailAddr, password string) string {
	t.Helper()

	rec := ts.sendForm(t, http.MethodPost, "/login", "", url.Values{
		"email":    {emailAddr},
		"password": {password},
	})
	require.Equal(t, http.StatusOK, rec.Code, "login should succeed: %s", rec.Body.String())

	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie && c.Value != "" {
			return c.Value
		}
	}
	t.Fatal("no session cookie in login response")
	return ""
}

func (ts *testServer) seedGrade(t *testing.T, code int) *models.Grade {
	t.Helper()

	grade := &models.Grade{Grade: code}
	require.NoError(t, ts.DB.Create(grade).Error)
	return grade
}
