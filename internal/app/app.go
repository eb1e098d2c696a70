package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"pathway_edu_backend/internal/config"
	"pathway_edu_backend/internal/controller"
	"pathway_edu_backend/internal/repository"
	"pathway_edu_backend/internal/service"
	"pathway_edu_backend/pkg/database"
	"pathway_edu_backend/pkg/logger"
	"pathway_edu_backend/pkg/monitoring"
	"pathway_edu_backend/pkg/security"
	"pathway_edu_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
	stopSweep       chan struct{}
}

type repositories struct {
	audit      *repository.SkillsAuditRepository
	goal       *repository.GoalRepository
	playlist   *repository.PlaylistRepository
	touchpoint *repository.TouchpointRepository
	alert      *repository.AlertRepository
	assessment *repository.AssessmentRepository
	track      *repository.CareerTrackRepository
}

type services struct {
	storage    *service.StorageService
	persona    *service.PersonaService
	goal       *service.GoalService
	playlist   *service.PlaylistService
	touchpoint *service.TouchpointService
	monitoring *service.MonitoringService
	assessment *service.AssessmentService
	track      *service.TrackService
	dashboard  *service.DashboardService
}

type controllers struct {
	audit      *controller.AuditController
	goal       *controller.GoalController
	playlist   *controller.PlaylistController
	touchpoint *controller.TouchpointController
	alert      *controller.AlertController
	assessment *controller.AssessmentController
	track      *controller.TrackController
	dashboard  *controller.DashboardController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置热更新入口，由文件监听方调用
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		audit:      repository.NewSkillsAuditRepository(db),
		goal:       repository.NewGoalRepository(db),
		playlist:   repository.NewPlaylistRepository(db),
		touchpoint: repository.NewTouchpointRepository(db),
		alert:      repository.NewAlertRepository(db),
		assessment: repository.NewAssessmentRepository(db),
		track:      repository.NewCareerTrackRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	notifier := service.NewRedisNotifier(rdb, cfg.Pathway.EventChannel)

	s.storage = service.NewStorageService(cfg)
	s.persona = service.NewPersonaService(repos.audit, service.StaticSignalSource{})
	s.goal = service.NewGoalService(repos.goal, s.persona, service.TrackRelevance{Tracks: repos.track})
	s.playlist = service.NewPlaylistService(
		repos.playlist,
		repos.goal,
		s.persona,
		service.StaticCatalog{},
		cfg.Pathway.PlaylistSize,
		db,
	)
	s.touchpoint = service.NewTouchpointService(repos.touchpoint, repos.playlist, notifier)
	s.monitoring = service.NewMonitoringService(
		repos.alert,
		repos.playlist,
		repos.goal,
		s.playlist,
		[]service.AlertDetector{
			service.ProgressLagDetector{Expected: service.LinearExpectedProgress},
			service.LowEngagementDetector{},
			service.DifficultySpikeDetector{},
			service.PredictedFailureDetector{},
		},
		notifier,
	)
	s.assessment = service.NewAssessmentService(repos.assessment, repos.goal, s.storage, db)
	s.track = service.NewTrackService(repos.track, rdb, cfg.Pathway.TrackCacheTTL)
	s.dashboard = service.NewDashboardService(s.persona, repos.goal, repos.playlist, repos.alert)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		audit:      controller.NewAuditController(s.persona),
		goal:       controller.NewGoalController(s.goal),
		playlist:   controller.NewPlaylistController(s.playlist),
		touchpoint: controller.NewTouchpointController(s.touchpoint),
		alert:      controller.NewAlertController(s.monitoring),
		assessment: controller.NewAssessmentController(s.assessment),
		track:      controller.NewTrackController(s.track),
		dashboard:  controller.NewDashboardController(s.dashboard),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks 定时对全量用户跑预警巡检
func (a *App) startBackgroundTasks(s *services) {
	if !a.Config.Monitoring.SweepEnabled {
		return
	}

	a.stopSweep = make(chan struct{})
	interval := time.Duration(a.Config.Monitoring.SweepMinutes) * time.Minute

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := s.monitoring.Sweep(); err != nil {
					logger.Log.Error("monitoring sweep error", zap.Error(err))
				}
			case <-a.stopSweep:
				return
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("pathway-engine", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if a.stopSweep != nil {
		close(a.stopSweep)
	}

	// 关闭服务
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
