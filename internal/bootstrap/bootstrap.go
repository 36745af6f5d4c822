package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yigit/mentorbridge/internal/app/careers"
	appControllers "github.com/yigit/mentorbridge/internal/app/controllers"
	appMigrations "github.com/yigit/mentorbridge/internal/app/migrations"
	appRepos "github.com/yigit/mentorbridge/internal/app/repositories"
	"github.com/yigit/mentorbridge/internal/app/repositories/mongodb"
	"github.com/yigit/mentorbridge/internal/app/repositories/postgres"
	appRoutes "github.com/yigit/mentorbridge/internal/app/routes"
	appServices "github.com/yigit/mentorbridge/internal/app/services"
	"github.com/yigit/mentorbridge/internal/config"
	"github.com/yigit/mentorbridge/internal/db"
	"github.com/yigit/mentorbridge/internal/metrics"
	appMiddleware "github.com/yigit/mentorbridge/internal/middleware"
	pkgAuth "github.com/yigit/mentorbridge/internal/pkg/auth"
	"github.com/yigit/mentorbridge/internal/pkg/helpers"
	"github.com/yigit/mentorbridge/internal/pkg/logger"
	"github.com/yigit/mentorbridge/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Services       *appServices.Services
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", "configs/config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.EqualFold(cfg.Logging.Format, "text"),
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage connects the configured storage driver, prepares its schema and
// returns the repositories with a func releasing the connection.
func SetupStorage(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, func(), error) {
	lgr.Info().Str("driver", cfg.Database.Driver).Msg("Establishing database connection...")

	switch cfg.Database.Driver {
	case config.DriverMongo:
		database, err := db.NewMongoDB(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, database.Database); err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("failed to create indexes: %w", err)
		}
		lgr.Info().Str("database", cfg.Database.Name).Msg("MongoDB connection established, indexes ensured.")
		return mongodb.NewRepositories(database.Database), database.Close, nil

	default:
		database, err := db.NewPostgresDB(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, nil, err
		}

		migrationsDir := cfg.Database.MigrationsDir
		if _, err := os.Stat(migrationsDir); err != nil {
			database.Close()
			lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
			return nil, nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
		}

		lgr.Info().Msg("Running database migrations...")
		migrator := appMigrations.NewMigrator(database.Pool, logger.Component("migrator"))
		if err := migrator.MigrateFS(ctx, os.DirFS(migrationsDir)); err != nil {
			database.Close()
			lgr.Error().Err(err).Msg("Database migration error")
			return nil, nil, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Database migrations successfully applied.")
		return postgres.NewRepositories(database.Pool), database.Close, nil
	}
}

// LoadCatalog returns the career catalog file named in the config, or the built-in one
func LoadCatalog(cfg *config.Config) (*careers.Catalog, error) {
	if cfg.Careers.CatalogPath == "" {
		return careers.Default(), nil
	}
	return careers.LoadFile(cfg.Careers.CatalogPath)
}

// BuildDependencies initializes services and controllers over repos.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, catalog *careers.Catalog, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Repos: repos, Logger: lgr}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(repos, deps.JWTService, catalog, lgr)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = appRoutes.Controllers{
		Auth:       appControllers.NewAuthController(deps.Services.AuthService, logger.Component("auth_controller")),
		User:       appControllers.NewUserController(deps.Services.UserService),
		Admin:      appControllers.NewAdminController(deps.Services.UserService),
		Match:      appControllers.NewMatchController(deps.Services.MatchService),
		Career:     appControllers.NewCareerController(deps.Services.CareerService),
		Mentorship: appControllers.NewMentorshipController(deps.Services.MentorshipService, logger.Component("mentorship_controller")),
		Chat:       appControllers.NewChatController(deps.Services.ChatService),
	}

	return deps
}

// SeedDefaults creates the admin account and sample internships when missing
func SeedDefaults(ctx context.Context, cfg *config.Config, deps *Dependencies) error {
	admin := seed.AdminAccount{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		Name:     cfg.Admin.Name,
	}
	return seed.CreateDefaultData(ctx, deps.Repos, deps.Services.AuthService, admin, logger.Component("seed"))
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	metrics.Init()
	appMiddleware.RegisterValidators()

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestLogger(logger.Component("http")),
		appMiddleware.Metrics(),
		cors.New(corsConfig(cfg.CORS.AllowedOrigins)),
	)

	appRoutes.SetupSwagger(router, "")
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	router.GET("/metrics", metrics.Handler())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}

func corsConfig(origins []string) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", appMiddleware.RequestIDHeader)
	corsCfg.ExposeHeaders = []string{appMiddleware.RequestIDHeader}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsCfg.AllowAllOrigins = true
		return corsCfg
	}
	corsCfg.AllowOrigins = origins
	return corsCfg
}
