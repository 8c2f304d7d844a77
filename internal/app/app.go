package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"joblink_backend/database"
	"joblink_backend/internal/auth"
	"joblink_backend/internal/config"
	"joblink_backend/internal/email"
	"joblink_backend/internal/handlers"
	"joblink_backend/internal/logger"
	"joblink_backend/internal/middleware"
	"joblink_backend/internal/models"
	"joblink_backend/internal/repositories"
	"joblink_backend/internal/routes"
	"joblink_backend/internal/services"
	"joblink_backend/internal/storage"
	"joblink_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	// TranslateError is required: the repositories rely on
	// gorm.ErrDuplicatedKey to detect unique-index violations.
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
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
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	tokenIssuer := auth.NewTokenIssuer(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)

	serviceContainer := initializeServices(cfg, tokenIssuer, storageInstance)

	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)

	routes.RegisterRoutes(ginRouter, appHandlers, tokenIssuer)

	return ginRouter
}

func initializeServices(cfg *config.Config, tokenIssuer *auth.TokenIssuer, storageInstance storage.Storage) *services.ServiceContainer {
	var emailService email.Provider
	smtpProvider, err := email.NewSMTPProvider(email.Config{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
		UseTLS:    cfg.Email.UseTLS,
	})
	if err != nil {
		logger.Warn("SMTP provider unavailable, falling back to mock email", "error", err)
		emailService = &MockEmailProvider{}
	} else {
		emailService = smtpProvider
	}

	candidateRepo := repositories.NewCandidateRepository()
	orgRepo := repositories.NewOrganizationRepository()
	recruiterRepo := repositories.NewRecruiterRepository()
	adminRepo := repositories.NewAdminRepository()
	jobRepo := repositories.NewJobRepository()
	applicationRepo := repositories.NewApplicationRepository()

	otpTTL := time.Duration(cfg.OTP.TTL) * time.Minute

	candidateAuthService := services.NewCandidateAuthService(candidateRepo, tokenIssuer, emailService, storageInstance, otpTTL)
	organizationAuthService := services.NewOrganizationAuthService(orgRepo, tokenIssuer, emailService, otpTTL)
	recruiterAuthService := services.NewRecruiterAuthService(recruiterRepo, tokenIssuer)
	adminService := services.NewAdminService(adminRepo, orgRepo, recruiterRepo, tokenIssuer)
	jobService := services.NewJobService(jobRepo, storageInstance)
	applicationService := services.NewApplicationService(applicationRepo, candidateRepo, jobRepo, emailService, storageInstance)
	candidateService := services.NewCandidateService(candidateRepo, storageInstance)

	return &services.ServiceContainer{
		CandidateAuthService:    candidateAuthService,
		OrganizationAuthService: organizationAuthService,
		RecruiterAuthService:    recruiterAuthService,
		AdminService:            adminService,
		JobService:              jobService,
		ApplicationService:      applicationService,
		CandidateService:        candidateService,
		EmailService:            emailService,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		CandidateAuthHandler:    handlers.NewCandidateAuthHandler(baseHandler, services.CandidateAuthService),
		OrganizationAuthHandler: handlers.NewOrganizationAuthHandler(baseHandler, services.OrganizationAuthService),
		RecruiterAuthHandler:    handlers.NewRecruiterAuthHandler(baseHandler, services.RecruiterAuthService),
		AdminHandler:            handlers.NewAdminHandler(baseHandler, services.AdminService),
		JobHandler:              handlers.NewJobHandler(baseHandler, services.JobService),
		ApplicationHandler:      handlers.NewApplicationHandler(baseHandler, services.ApplicationService),
		CandidateHandler:        handlers.NewCandidateHandler(baseHandler, services.CandidateService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin creates the bootstrap admin account on an empty
// deployment. A configured username that already exists is left alone.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	username := cfg.FirstAdminUsername
	password := cfg.FirstAdminPassword

	if username == "" || password == "" {
		logger.Warn("FIRST_ADMIN_USERNAME or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var admin models.Admin
	result := db.Where("username = ?", username).First(&admin)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "username", username)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin...", "username", username)

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.Admin{
		Username:     username,
		PasswordHash: hash,
		Role:         "admin",
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("First admin created", "username", username)
	return nil
}
