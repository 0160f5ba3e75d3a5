// Package bootstrap wires configuration, database, services, and the HTTP
// router together for the server entrypoint.
package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/devang/profmatch/internal/app/controllers"
	appRepos "github.com/devang/profmatch/internal/app/repositories"
	appRoutes "github.com/devang/profmatch/internal/app/routes"
	appServices "github.com/devang/profmatch/internal/app/services"
	"github.com/devang/profmatch/internal/config"
	"github.com/devang/profmatch/internal/db"
	appMiddleware "github.com/devang/profmatch/internal/middleware"
	"github.com/devang/profmatch/internal/pkg/assets"
	pkgAuth "github.com/devang/profmatch/internal/pkg/auth"
	"github.com/devang/profmatch/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AdminService        appServices.AdminService
	ProfessorService    appServices.ProfessorService
	StudentService      appServices.StudentService
	UserService         appServices.UserService
	AdminController     *appControllers.AdminController
	ProfessorController *appControllers.ProfessorController
	StudentController   *appControllers.StudentController
	UserController      *appControllers.UserController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	Uploader            assets.Uploader
	Logger              zerolog.Logger
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

// SetupDatabase connects to MongoDB and ensures the unique indexes exist.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.MongoDB, error) {
	lgr.Info().Str("database", cfg.Database.Name).Msg("Establishing database connection...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	database, err := db.NewMongoDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	if err := database.EnsureIndexes(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ensure indexes")
		_ = database.Close(context.Background())
		return nil, fmt.Errorf("ensuring indexes: %w", err)
	}

	lgr.Info().Msg("Database connection successfully established.")
	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.MongoDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExpiry: cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	uploader, err := assets.NewCloudinaryUploader(cfg.Assets.CloudName, cfg.Assets.APIKey, cfg.Assets.APISecret)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize asset uploader")
		return nil, fmt.Errorf("failed to initialize asset uploader: %w", err)
	}
	deps.Uploader = uploader

	deps.AdminService = appServices.NewAdminService(deps.Repos.AdminRepository, deps.JWTService, lgr)
	deps.ProfessorService = appServices.NewProfessorService(
		deps.Repos.ProfessorRepository,
		deps.Repos.StudentRepository,
		deps.JWTService,
		deps.Uploader,
		cfg.Assets.Folder,
		lgr,
	)
	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.ProfessorRepository,
		deps.JWTService,
		lgr,
	)
	deps.UserService = appServices.NewUserService(
		deps.Repos.AdminRepository,
		deps.Repos.ProfessorRepository,
		deps.Repos.StudentRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, lgr)

	deps.AdminController = appControllers.NewAdminController(deps.AdminService, deps.JWTService, lgr)
	deps.ProfessorController = appControllers.NewProfessorController(deps.ProfessorService, deps.JWTService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.JWTService, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService, lgr)

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

	appMiddleware.RegisterValidators()

	router := gin.Default()

	// Credentials must be allowed for the cookie session to work cross-origin.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORS.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	appRoutes.SetupRouter(router,
		deps.AdminController,
		deps.ProfessorController,
		deps.StudentController,
		deps.UserController,
		deps.AuthMiddleware,
	)

	return router
}
