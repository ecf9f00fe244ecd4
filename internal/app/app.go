package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"pretexta_backend/internal/config"
	"pretexta_backend/internal/controller"
	"pretexta_backend/internal/llm"
	"pretexta_backend/internal/repository"
	"pretexta_backend/internal/service"
	"pretexta_backend/pkg/database"
	"pretexta_backend/pkg/logger"
	"pretexta_backend/pkg/monitoring"
	"pretexta_backend/pkg/security"
	"pretexta_backend/pkg/tracing"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const serviceName = "pretexta"

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	services       *services
	origins        *security.OriginPolicy
	tracerProvider *sdktrace.TracerProvider

	mu              sync.Mutex
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	challenge  *repository.ChallengeRepository
	quiz       *repository.QuizRepository
	simulation *repository.SimulationRepository
	llmConfig  *repository.LLMConfigRepository
	settings   *repository.SettingsRepository
}

type services struct {
	auth       *service.AuthService
	content    *service.ContentService
	simulation *service.SimulationService
	llmConfig  *service.LLMConfigService
	llm        *service.LLMService
	settings   *service.SettingsService
	importer   *service.ImportService
	report     *service.ReportService
}

type controllers struct {
	auth       *controller.AuthController
	challenge  *controller.ChallengeController
	quiz       *controller.QuizController
	simulation *controller.SimulationController
	llm        *controller.LLMController
	settings   *controller.SettingsController
	importer   *controller.ImportController
	report     *controller.ReportController
	health     *controller.HealthController
}

// RegisterConfigCallback runs callback on every successful config reload.
func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig hands a reloaded config to the registered callbacks.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.mu.Lock()
	callbacks := append([]func(*config.Config){}, a.configCallbacks...)
	a.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	cache := repository.NewContentCache(rdb, cfg.Redis.CacheTTL)
	return &repositories{
		user:       repository.NewUserRepository(db),
		challenge:  repository.NewChallengeRepository(db, cache),
		quiz:       repository.NewQuizRepository(db, cache),
		simulation: repository.NewSimulationRepository(db),
		llmConfig:  repository.NewLLMConfigRepository(db),
		settings:   repository.NewSettingsRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.user, cfg)
	s.content = service.NewContentService(repos.challenge, repos.quiz)
	s.simulation = service.NewSimulationService(repos.simulation)
	s.llmConfig = service.NewLLMConfigService(repos.llmConfig)
	s.llm = service.NewLLMService(
		repos.llmConfig,
		llm.NewClients(cfg.LLM),
		cfg.LLM.ChatTimeout,
		logger.Log.Named("llm"),
	)
	s.settings = service.NewSettingsService(repos.settings)
	s.importer = service.NewImportService(s.content)
	s.report = service.NewReportService(s.simulation)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		challenge:  controller.NewChallengeController(s.content),
		quiz:       controller.NewQuizController(s.content),
		simulation: controller.NewSimulationController(s.simulation),
		llm:        controller.NewLLMController(s.llmConfig, s.llm),
		settings:   controller.NewSettingsController(s.settings),
		importer:   controller.NewImportController(s.importer),
		report:     controller.NewReportController(s.report),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	a.origins = security.NewOriginPolicy(cfg.CORS.AllowedOrigins)
	router.Use(security.CORS(a.origins))
	router.Use(security.Secure())

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())

	a.RegisterConfigCallback(func(newCfg *config.Config) {
		a.origins.Update(newCfg.CORS.AllowedOrigins)
		logger.SetLevel(newCfg.Server.Mode, newCfg.Log.Level)
		logger.Log.Info("Runtime settings reloaded",
			zap.Strings("cors_origins", newCfg.CORS.AllowedOrigins),
			zap.String("mode", newCfg.Server.Mode),
			zap.Stringer("log_level", logger.Level()),
		)
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	if cfg.JWT.Secret == config.InsecureJWTSecret {
		logger.Log.Warn("Using the built-in JWT secret, set JWT_SECRET before deploying")
	}

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(serviceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	repos := app.initRepositories(db, rdb, cfg)
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	if err := services.auth.EnsureSeedUser(); err != nil {
		logger.Log.Fatal("Failed to create seed user", zap.Error(err))
	}

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close(ctx)
	logger.Log.Info("Server exiting")
}

// Close releases the database pool, the cache client and the tracer.
func (a *App) Close(ctx context.Context) {
	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Error("Failed to close redis", zap.Error(err))
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Log.Error("Failed to close database", zap.Error(err))
			}
		}
	}
}
