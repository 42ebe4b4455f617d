package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tenderlink_backend/internal/config"
	"tenderlink_backend/internal/email"
	"tenderlink_backend/internal/handlers"
	"tenderlink_backend/internal/logger"
	"tenderlink_backend/internal/middleware"
	"tenderlink_backend/internal/models"
	"tenderlink_backend/internal/repositories"
	"tenderlink_backend/internal/routes"
	"tenderlink_backend/internal/services"
	"tenderlink_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("database unavailable", "error", err)
	}
	logger.Info("database connected")

	if err := gormDB.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Notification{},
	); err != nil {
		logger.Fatal("failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

// SetupRouter assembles the full gin engine. Split out from Run so tests can
// mount the router on httptest.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	emailProvider := newEmailProvider(cfg)

	serviceContainer := initializeServices(gormDB, emailProvider)
	appHandlers := initializeHandlers(serviceContainer, gormDB)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func newEmailProvider(cfg *config.Config) email.Provider {
	smtpConfig := email.DefaultConfig()
	smtpConfig.Host = cfg.Email.SMTPHost
	smtpConfig.Port = cfg.Email.SMTPPort
	smtpConfig.Username = cfg.Email.SMTPUsername
	smtpConfig.Password = cfg.Email.SMTPPassword
	smtpConfig.FromEmail = cfg.Email.FromEmail
	smtpConfig.FromName = cfg.Email.FromName

	return email.NewSMTPProvider(smtpConfig, email.NewTemplateManager())
}

func initializeServices(gormDB *gorm.DB, emailProvider email.Provider) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	projectRepo := repositories.NewProjectRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)

	notificationService := services.NewNotificationService(notificationRepo, userRepo, emailProvider)
	matcherService := services.NewMatcherService(userRepo)
	authService := services.NewAuthService(userRepo, notificationService, emailProvider)
	projectService := services.NewProjectService(projectRepo, userRepo, notificationService, matcherService)

	return &services.ServiceContainer{
		AuthService:         authService,
		ProjectService:      projectService,
		NotificationService: notificationService,
		MatcherService:      matcherService,
		EmailProvider:       emailProvider,
	}
}

func initializeHandlers(container *services.ServiceContainer, gormDB *gorm.DB) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, container.AuthService),
		ProjectHandler:      handlers.NewProjectHandler(baseHandler, container.ProjectService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, container.NotificationService),
		HealthHandler:       handlers.NewHealthHandler(gormDB),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
