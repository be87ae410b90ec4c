package app

import (
	"context"
	"earlyledge_backend/internal/config"
	"earlyledge_backend/internal/controller"
	"earlyledge_backend/internal/repository"
	"earlyledge_backend/internal/service"
	"earlyledge_backend/pkg/database"
	"earlyledge_backend/pkg/logger"
	"earlyledge_backend/pkg/monitoring"
	"earlyledge_backend/pkg/pdfgen"
	"earlyledge_backend/pkg/security"
	"earlyledge_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
	cron     *cron.Cron
}

type repositories struct {
	user         *repository.UserRepository
	child        *repository.ChildRepository
	skill        *repository.SkillRepository
	activity     *repository.ActivityRepository
	suggestion   *repository.SuggestionRepository
	subscription *repository.SubscriptionRepository
	reflection   *repository.ReflectionRepository
}

type services struct {
	auth       *service.AuthService
	plan       *service.PlanService
	child      *service.ChildService
	skillMap   *service.SkillMapService
	activity   *service.ActivityService
	dashboard  *service.DashboardService
	suggestion *service.SuggestionService
	analysis   *service.AnalysisService
	report     *service.ReportService
	reflection *service.ReflectionService
	archive    *service.ArchiveService
	storage    service.StorageProvider
}

type controllers struct {
	auth       *controller.AuthController
	child      *controller.ChildController
	activity   *controller.ActivityController
	skill      *controller.SkillController
	dashboard  *controller.DashboardController
	suggestion *controller.SuggestionController
	analysis   *controller.AnalysisController
	report     *controller.ReportController
	plan       *controller.PlanController
	reflection *controller.ReflectionController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		child:        repository.NewChildRepository(db),
		skill:        repository.NewSkillRepository(db),
		activity:     repository.NewActivityRepository(db),
		suggestion:   repository.NewSuggestionRepository(db),
		subscription: repository.NewSubscriptionRepository(db),
		reflection:   repository.NewReflectionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) (*services, error) {
	storage, err := service.NewStorageProvider(&cfg.Storage)
	if err != nil {
		return nil, err
	}

	s := &services{storage: storage}
	s.auth = service.NewAuthService(repos.user, cfg)
	s.plan = service.NewPlanService(repos.subscription, repos.child)
	s.child = service.NewChildService(repos.child, s.plan)
	s.skillMap = service.NewSkillMapService(repos.skill)
	s.activity = service.NewActivityService(repos.activity, repos.child, repos.skill, s.skillMap, s.plan)
	s.dashboard = service.NewDashboardService(repos.child, repos.activity, repos.skill)
	s.suggestion = service.NewSuggestionService(repos.suggestion, repos.child, rdb)
	s.analysis = service.NewAnalysisService(repos.child, repos.activity, repos.skill, repos.suggestion, s.plan)
	s.report = service.NewReportService(repos.child, repos.activity, s.plan, pdfgen.NewRenderer())
	s.reflection = service.NewReflectionService(repos.reflection, repos.child)
	s.archive = service.NewArchiveService(repos.subscription, repos.child, s.report, storage)
	return s, nil
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		child:      controller.NewChildController(s.child),
		activity:   controller.NewActivityController(s.activity),
		skill:      controller.NewSkillController(repos.skill),
		dashboard:  controller.NewDashboardController(s.dashboard),
		suggestion: controller.NewSuggestionController(s.suggestion),
		analysis:   controller.NewAnalysisController(s.analysis),
		report:     controller.NewReportController(s.report),
		plan:       controller.NewPlanController(s.plan),
		reflection: controller.NewReflectionController(s.reflection),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startArchiveJob schedules the monthly report archiver shortly after each
// month rolls over.
func (a *App) startArchiveJob(s *services) {
	a.cron = cron.New()
	_, err := a.cron.AddFunc("30 2 1 * *", func() {
		if err := s.archive.ArchivePreviousMonth(context.Background()); err != nil {
			logger.Log.Error("monthly archive run failed", zap.Error(err))
		}
	})
	if err != nil {
		logger.Log.Error("failed to schedule monthly archive job", zap.Error(err))
		return
	}
	a.cron.Start()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// The daily suggestion cache degrades gracefully without Redis.
		logger.Log.Warn("Redis unavailable, suggestion caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	app.services = services
	controllers := app.initControllers(services, repos, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("earlyledge", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startArchiveJob(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if a.cron != nil {
		a.cron.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
