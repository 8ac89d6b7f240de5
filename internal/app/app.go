package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"cms_backend/internal/auth"
	"cms_backend/internal/config"
	"cms_backend/internal/database"
	"cms_backend/internal/email"
	"cms_backend/internal/handlers"
	"cms_backend/internal/logger"
	"cms_backend/internal/middleware"
	"cms_backend/internal/models"
	"cms_backend/internal/repositories"
	"cms_backend/internal/routes"
	"cms_backend/internal/services"
	"cms_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := openDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}
	if err := database.SeedGrades(gormDB); err != nil {
		logger.Fatal("Failed to seed grades", "error", err)
	}
	if err := seedFirstSuperuser(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first superuser", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case "mysql":
		return gorm.Open(mysql.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	case "postgres", "":
		return gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer, cfg)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers, cfg)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailProvider email.Provider
	if sender, err := email.NewGomailSender(cfg); err == nil {
		emailProvider = sender
	} else {
		logger.Warn("SMTP not configured, outgoing mail is discarded", "reason", err)
		emailProvider = &MockEmailProvider{}
	}

	userRepo := repositories.NewUserRepository(gormDB)
	personRepo := repositories.NewPersonRepository(gormDB)
	costRepo := repositories.NewCostRepository(gormDB)
	gradeRepo := repositories.NewGradeRepository(gormDB)

	authService := services.NewAuthService(userRepo, emailProvider, cfg)
	userService := services.NewUserService(userRepo)
	personService := services.NewPersonService(personRepo)
	costService := services.NewCostService(personRepo, costRepo, gradeRepo)

	return &services.ServiceContainer{
		AuthService:   authService,
		UserService:   userService,
		PersonService: personService,
		CostService:   costService,
		EmailProvider: emailProvider,
	}
}

func initializeHandlers(services *services.ServiceContainer, cfg *config.Config) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:   handlers.NewAuthHandler(baseHandler, services.AuthService, cfg),
		UserHandler:   handlers.NewUserHandler(baseHandler, services.UserService),
		PersonHandler: handlers.NewPersonHandler(baseHandler, services.PersonService),
		CostHandler:   handlers.NewCostHandler(baseHandler, services.CostService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// seedFirstSuperuser creates the configured superuser account when it does
// not exist yet. The account is created already active.
func seedFirstSuperuser(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstSuperuserEmail
	adminPassword := cfg.FirstSuperuserPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_SUPERUSER_EMAIL or FIRST_SUPERUSER_PASSWORD is not set. Skipping superuser seeding.")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", adminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Superuser already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for superuser: %w", result.Error)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash superuser password: %w", err)
	}

	superuser := &models.User{
		Email:        adminEmail,
		PasswordHash: hash,
		IsStaff:      true,
		IsSuperuser:  true,
		IsActive:     true,
	}
	if err := db.Create(superuser).Error; err != nil {
		return fmt.Errorf("failed to create superuser: %w", err)
	}

	logger.Info("Created first superuser", "email", adminEmail)
	return nil
}
