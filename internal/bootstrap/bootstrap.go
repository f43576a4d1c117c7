package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/arjunrk/schoolbeam/internal/app/controllers"
	appMigrations "github.com/arjunrk/schoolbeam/internal/app/migrations"
	appRepos "github.com/arjunrk/schoolbeam/internal/app/repositories"
	appRoutes "github.com/arjunrk/schoolbeam/internal/app/routes"
	appServices "github.com/arjunrk/schoolbeam/internal/app/services"
	"github.com/arjunrk/schoolbeam/internal/config"
	"github.com/arjunrk/schoolbeam/internal/db"
	"github.com/arjunrk/schoolbeam/internal/pkg/genai"
	"github.com/arjunrk/schoolbeam/internal/pkg/logger"
	"github.com/arjunrk/schoolbeam/internal/pkg/websocket"
	"github.com/arjunrk/schoolbeam/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService         appServices.StudentService
	TeacherService         appServices.TeacherService
	AnnouncementService    appServices.AnnouncementService
	ReportService          appServices.ReportService
	ResourceService        appServices.ResourceService
	AuthController         *appControllers.AuthController
	StudentController      *appControllers.StudentController
	ReportController       *appControllers.ReportController
	AnnouncementController *appControllers.AnnouncementController
	ResourceController     *appControllers.ResourceController
	Repos                  *appRepos.Repositories
	Hub                    *websocket.Hub
	WSHandler              *websocket.Handler
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
// installs seed data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Run migrations
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

	// Install default data after migrations
	if err := seed.CreateDefaultData(context.Background(), database, lgr); err != nil {
		// Log the error but don't necessarily fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	// Start the announcement fan-out hub
	deps.Hub = websocket.NewHub(lgr)
	go deps.Hub.Run()
	deps.WSHandler = websocket.NewHandler(deps.Hub, lgr)

	geminiClient := genai.NewGeminiClient(genai.GeminiConfig{
		APIKey:  cfg.GenAI.APIKey,
		Model:   cfg.GenAI.Model,
		Timeout: cfg.GetGenAITimeout(),
	})

	// Initialize services
	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.RollSequence,
		lgr,
	)
	deps.TeacherService = appServices.NewTeacherService(deps.Repos.TeacherRepository)
	deps.AnnouncementService = appServices.NewAnnouncementService(
		deps.Repos.AnnouncementRepository,
		deps.Hub,
		lgr,
	)
	deps.ReportService = appServices.NewReportService(geminiClient, cfg.GetGenAITimeout(), lgr)
	deps.ResourceService = appServices.NewResourceService(
		deps.Repos.MaterialRepository,
		deps.Repos.TimetableRepository,
	)

	// Initialize controllers
	deps.AuthController = appControllers.NewAuthController(deps.TeacherService, deps.StudentService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.ReportController = appControllers.NewReportController(deps.ReportService)
	deps.AnnouncementController = appControllers.NewAnnouncementController(deps.AnnouncementService)
	deps.ResourceController = appControllers.NewResourceController(deps.ResourceService, deps.TeacherService)

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
		deps.StudentController,
		deps.ReportController,
		deps.AnnouncementController,
		deps.ResourceController,
		deps.WSHandler,
	)

	return router
}
