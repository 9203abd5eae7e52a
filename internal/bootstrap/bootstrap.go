package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/campussphere/internal/app/controllers"
	appMigrations "github.com/yigit/campussphere/internal/app/migrations"
	appRepos "github.com/yigit/campussphere/internal/app/repositories"
	appRoutes "github.com/yigit/campussphere/internal/app/routes"
	appServices "github.com/yigit/campussphere/internal/app/services"
	"github.com/yigit/campussphere/internal/config"
	"github.com/yigit/campussphere/internal/db"
	appMiddleware "github.com/yigit/campussphere/internal/middleware"
	pkgAuth "github.com/yigit/campussphere/internal/pkg/auth"
	"github.com/yigit/campussphere/internal/pkg/helpers"
	"github.com/yigit/campussphere/internal/pkg/logger"
	"github.com/yigit/campussphere/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          *appServices.AuthService
	ProfileService       *appServices.ProfileService
	EventService         *appServices.EventService
	CollaborationService *appServices.CollaborationService
	MentorshipService    *appServices.MentorshipService
	AdminService         *appServices.AdminService
	AuthController       *appControllers.AuthController
	PlatformController   *appControllers.PlatformController
	StudentController    *appControllers.StudentController
	FacultyController    *appControllers.FacultyController
	AdminController      *appControllers.AdminController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	SessionService       *pkgAuth.SessionService
	Logger               zerolog.Logger
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

// SetupDatabase establishes the database connection and runs migrations.
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

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	transactor := db.NewTransactor(dbPool)

	deps.SessionService = pkgAuth.NewSessionService(pkgAuth.SessionConfig{
		SecretKey:   cfg.Session.Secret,
		TokenExp:    helpers.ParseDuration(cfg.Session.TokenExpiration, 720*time.Hour),
		TokenIssuer: cfg.Session.Issuer,
		CookieName:  cfg.Session.CookieName,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, transactor, deps.SessionService)
	deps.ProfileService = appServices.NewProfileService(deps.Repos.UserRepository, deps.Repos.DepartmentRepository, transactor)
	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository)
	deps.CollaborationService = appServices.NewCollaborationService(deps.Repos.CollaborationRepository)
	deps.MentorshipService = appServices.NewMentorshipService(deps.Repos.MentorshipRepository, deps.Repos.CollaborationRepository)
	deps.AdminService = appServices.NewAdminService(
		deps.Repos.UserRepository,
		deps.Repos.EventRepository,
		deps.Repos.AnnouncementRepository,
		deps.Repos.SettingsRepository,
		deps.Repos.AnalyticsRepository,
		transactor,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.SessionService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.SessionService)
	deps.PlatformController = appControllers.NewPlatformController(deps.ProfileService)
	deps.StudentController = appControllers.NewStudentController(deps.ProfileService, deps.EventService, deps.CollaborationService)
	deps.FacultyController = appControllers.NewFacultyController(deps.ProfileService, deps.EventService, deps.MentorshipService)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService)

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

	router.Use(appMiddleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(appMiddleware.RequestMetrics())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.PlatformController,
		deps.StudentController,
		deps.FacultyController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	return router
}
