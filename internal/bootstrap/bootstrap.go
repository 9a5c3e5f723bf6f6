package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/placementportal/internal/app/controllers"
	appRepos "github.com/yigit/placementportal/internal/app/repositories"
	appRoutes "github.com/yigit/placementportal/internal/app/routes"
	appServices "github.com/yigit/placementportal/internal/app/services"
	"github.com/yigit/placementportal/internal/config"
	"github.com/yigit/placementportal/internal/db"
	appMiddleware "github.com/yigit/placementportal/internal/middleware"
	"github.com/yigit/placementportal/internal/pkg/filestorage"
	"github.com/yigit/placementportal/internal/pkg/helpers"
	"github.com/yigit/placementportal/internal/pkg/logger"
	"github.com/yigit/placementportal/internal/pkg/validation"
	"github.com/yigit/placementportal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Database               db.Database
	BlobStore              filestorage.BlobStore
	Repos                  *appRepos.Repositories
	Services               *appServices.Services
	StudentController      *appControllers.StudentController
	CompanyController      *appControllers.CompanyController
	SessionController      *appControllers.SessionController
	NotificationController *appControllers.NotificationController
	AuthController         *appControllers.AuthController
	HealthController       *appControllers.HealthController
	Logger                 zerolog.Logger
}

// ConfigPath returns the config file location, overridable with CONFIG_PATH
func ConfigPath() string {
	return config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(ConfigPath())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// ShouldSeedDefaultData reports whether SetupDatabase inserts the default data.
// SEED_DEFAULT_DATA overrides the default, which is on for the memory driver only.
func ShouldSeedDefaultData(cfg *config.Config) bool {
	return config.GetEnvAsBool("SEED_DEFAULT_DATA", cfg.Database.Driver == config.DatabaseDriverMemory)
}

// SetupDatabase opens the configured document store and ensures its indexes.
// The returned *db.MongoDB is nil for the memory driver.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (db.Database, *db.MongoDB, error) {
	var (
		database db.Database
		mongoDB  *db.MongoDB
	)

	switch cfg.Database.Driver {
	case config.DatabaseDriverMemory:
		lgr.Warn().Msg("Using in-memory database; data is lost on restart")
		database = db.NewMemoryDB()
	default:
		lgr.Info().Str("database", cfg.Database.Name).Msg("Establishing database connection...")
		var err error
		mongoDB, err = db.NewMongoDB(cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, nil, err
		}
		database = mongoDB
		lgr.Info().Msg("Database connection successfully established.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.ParseDuration(cfg.Database.ConnectTimeout, 10*time.Second))
	defer cancel()
	appRepos.EnsureIndexes(ctx, database, appRepos.DefaultIndexes)

	// A fresh in-memory store has no accounts, so seed it to make login usable
	if ShouldSeedDefaultData(cfg) {
		if err := seed.CreateDefaultData(ctx, appRepos.NewRepositories(database), lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, mongoDB, nil
}

// SetupBlobStore creates the configured binary object store
func SetupBlobStore(cfg *config.Config, mongoDB *db.MongoDB, lgr zerolog.Logger) (filestorage.BlobStore, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		lgr.Warn().Msg("Using in-memory file storage; uploads are lost on restart")
		return filestorage.NewMemoryStorage(), nil
	case config.StorageDriverLocal:
		return filestorage.NewLocalStorage(cfg.Storage.LocalPath)
	case config.StorageDriverMinio:
		ctx, cancel := context.WithTimeout(context.Background(), helpers.ParseDuration(cfg.Database.ConnectTimeout, 10*time.Second))
		defer cancel()
		return filestorage.NewMinioStorage(ctx, filestorage.MinioConfig{
			Endpoint:  cfg.Storage.Minio.Endpoint,
			AccessKey: cfg.Storage.Minio.AccessKey,
			SecretKey: cfg.Storage.Minio.SecretKey,
			Bucket:    cfg.Storage.Minio.Bucket,
		})
	default:
		if mongoDB == nil {
			return nil, fmt.Errorf("gridfs storage requires a mongo connection")
		}
		return filestorage.NewGridFSStorage(mongoDB.Database, cfg.Storage.Bucket)
	}
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(database db.Database, blobs filestorage.BlobStore, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{
		Database:  database,
		BlobStore: blobs,
		Logger:    lgr,
	}

	deps.Repos = appRepos.NewRepositories(database)
	deps.Services = appServices.NewServices(deps.Repos, blobs)

	deps.StudentController = appControllers.NewStudentController(deps.Services.StudentService)
	deps.CompanyController = appControllers.NewCompanyController(deps.Services.CompanyService)
	deps.SessionController = appControllers.NewSessionController(deps.Services.SessionService)
	deps.NotificationController = appControllers.NewNotificationController(deps.Services.NotificationService)
	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.HealthController = appControllers.NewHealthController(database)

	return deps
}

// NewEngine builds a gin engine with the shared middleware chain and every route
func NewEngine(deps *Dependencies, maxMultipartMB int) *gin.Engine {
	if err := validation.RegisterCustomValidators(); err != nil {
		deps.Logger.Error().Err(err).Msg("Failed to register custom validators")
	}

	router := gin.New()
	if maxMultipartMB > 0 {
		router.MaxMultipartMemory = int64(maxMultipartMB) << 20
	}

	router.Use(
		appMiddleware.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
		appMiddleware.CORS(),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.CompanyController,
		deps.SessionController,
		deps.NotificationController,
		deps.AuthController,
		deps.HealthController,
	)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Route not found"})
	})

	return router
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

	return NewEngine(deps, cfg.Server.MaxMultipartMB)
}
