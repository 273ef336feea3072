package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/halit/campushub/internal/app/controllers"
	appMigrations "github.com/halit/campushub/internal/app/migrations"
	appRepos "github.com/halit/campushub/internal/app/repositories"
	appRoutes "github.com/halit/campushub/internal/app/routes"
	appServices "github.com/halit/campushub/internal/app/services"
	"github.com/halit/campushub/internal/config"
	"github.com/halit/campushub/internal/db"
	appMiddleware "github.com/halit/campushub/internal/middleware"
	pkgAuth "github.com/halit/campushub/internal/pkg/auth"
	"github.com/halit/campushub/internal/pkg/email"
	"github.com/halit/campushub/internal/pkg/filestorage"
	"github.com/halit/campushub/internal/pkg/helpers"
	"github.com/halit/campushub/internal/pkg/logger"
	"github.com/halit/campushub/internal/pkg/oauth"
	"github.com/halit/campushub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	ClubService            appServices.ClubService
	EventService           appServices.EventService
	LostFoundService       appServices.LostFoundService
	FeedbackService        appServices.FeedbackService
	NotificationService    appServices.NotificationService
	AuthController         *appControllers.AuthController
	ClubController         *appControllers.ClubController
	EventController        *appControllers.EventController
	LostFoundController    *appControllers.LostFoundController
	FeedbackController     *appControllers.FeedbackController
	NotificationController *appControllers.NotificationController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	Mailer                 email.Sender
	FileStorage            filestorage.Storage
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// buildFileStorage selects the storage backend from configuration.
func buildFileStorage(cfg *config.Config, lgr zerolog.Logger) (filestorage.Storage, error) {
	if strings.ToLower(cfg.Storage.Driver) == "s3" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		storage, err := filestorage.NewS3Storage(ctx, filestorage.S3Config{
			Endpoint:        cfg.Storage.S3Endpoint,
			Region:          cfg.Storage.S3Region,
			AccessKeyID:     cfg.Storage.S3AccessKey,
			AccessKeySecret: cfg.Storage.S3SecretKey,
			Bucket:          cfg.Storage.S3Bucket,
			PublicURL:       cfg.Storage.S3PublicBaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		lgr.Info().Str("bucket", cfg.Storage.S3Bucket).Msg("S3 file storage configured")
		return storage, nil
	}

	baseURL := "http://localhost:" + cfg.Server.Port + "/uploads"
	storage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize local storage: %w", err)
	}
	lgr.Info().Str("path", cfg.Server.StoragePath).Msg("Local file storage configured")
	return storage, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = buildFileStorage(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, err
	}

	deps.Mailer = email.NewSMTPSender(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
	}, lgr)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	googleProvider := oauth.NewGoogleProvider(oauth.GoogleConfig{
		ClientID:     cfg.OAuth.GoogleClientID,
		ClientSecret: cfg.OAuth.GoogleClientSecret,
		RedirectURL:  cfg.OAuth.RedirectURL,
	})

	// Services
	deps.NotificationService = appServices.NewNotificationService(deps.Repos.NotificationRepository, lgr)
	deps.AuthService = appServices.NewAuthService(
		googleProvider,
		deps.Repos.UserRepository,
		deps.JWTService,
		cfg.OAuth.AllowedEmailDomain,
		lgr,
	)
	deps.ClubService = appServices.NewClubService(deps.Repos.ClubRepository, lgr)
	deps.EventService = appServices.NewEventService(
		deps.Repos.EventRepository,
		deps.NotificationService,
		deps.Mailer,
		deps.FileStorage,
		lgr,
	)
	deps.LostFoundService = appServices.NewLostFoundService(
		deps.Repos.LostFoundRepository,
		deps.NotificationService,
		deps.FileStorage,
		lgr,
	)
	deps.FeedbackService = appServices.NewFeedbackService(deps.Repos.FeedbackRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	// Controllers
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, cfg.Server.FrontendURL)
	deps.ClubController = appControllers.NewClubController(deps.ClubService)
	deps.EventController = appControllers.NewEventController(deps.EventService)
	deps.LostFoundController = appControllers.NewLostFoundController(deps.LostFoundService)
	deps.FeedbackController = appControllers.NewFeedbackController(deps.FeedbackService)
	deps.NotificationController = appControllers.NewNotificationController(deps.NotificationService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ClubController,
		deps.EventController,
		deps.LostFoundController,
		deps.FeedbackController,
		deps.NotificationController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
