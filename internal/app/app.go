package app

import (
	"fmt"

	"ecomatch_backend/database"
	"ecomatch_backend/internal/config"
	"ecomatch_backend/internal/email"
	"ecomatch_backend/internal/handlers"
	"ecomatch_backend/internal/logger"
	"ecomatch_backend/internal/middleware"
	"ecomatch_backend/internal/routes"
	"ecomatch_backend/internal/seeder"
	"ecomatch_backend/internal/services"
	"ecomatch_backend/internal/storage"
	"ecomatch_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// App holds the assembled application.
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Router *gin.Engine
	Mailer email.Provider
}

// New assembles the application: database, mailer, storage, services,
// handlers and routes.
func New(cfg *config.Config) (*App, error) {
	logger.Init(cfg.Server.Env)
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	if err := seeder.Seed(db); err != nil {
		return nil, fmt.Errorf("seeding failed: %w", err)
	}
	if err := seeder.SeedFirstAdmin(db, cfg.FirstAdminEmail, cfg.FirstAdminPassword); err != nil {
		return nil, fmt.Errorf("admin seeding failed: %w", err)
	}

	mailer, err := buildMailer(cfg)
	if err != nil {
		return nil, err
	}

	files, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	app := &App{Config: cfg, DB: db, Mailer: mailer}
	app.Router = SetupRouter(cfg, db, mailer, files)
	return app, nil
}

// SetupRouter builds the engine with all middleware and routes. Shared
// with the integration tests, which pass in their own mailer.
func SetupRouter(cfg *config.Config, db *gorm.DB, mailer email.Provider, files storage.Storage) *gin.Engine {
	repos := services.NewRepositories(db)
	container := services.NewContainer(cfg, db, repos, mailer, files)
	appHandlers := handlers.NewAppHandlers(container, validator.New())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Frontend.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))

	routes.Register(router, appHandlers, container.JWT)
	return router
}

// Run starts the HTTP server and blocks.
func (a *App) Run() error {
	addr := fmt.Sprintf("%s:%d", a.Config.Server.Host, a.Config.Server.Port)
	logger.Info("server starting", "addr", addr, "env", a.Config.Server.Env)
	return a.Router.Run(addr)
}

// Close releases external resources.
func (a *App) Close() {
	if a.Mailer != nil {
		_ = a.Mailer.Close()
	}
}

// buildMailer returns the SMTP provider, or a log-only fallback when
// SMTP is not configured so development setups still boot.
func buildMailer(cfg *config.Config) (email.Provider, error) {
	smtpCfg := &email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUsername,
		Password:    cfg.Email.SMTPPassword,
		FromEmail:   cfg.Email.FromEmail,
		FromName:    cfg.Email.FromName,
		FrontendURL: cfg.Frontend.BaseURL,
	}
	if err := smtpCfg.Validate(); err != nil {
		logger.Warn("smtp not configured, emails will only be logged", "reason", err.Error())
		return email.NewLogProvider(cfg.Frontend.BaseURL), nil
	}
	return email.NewSMTPProvider(smtpCfg)
}
