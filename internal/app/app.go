package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cricwordle_backend/internal/config"
	"cricwordle_backend/internal/controller"
	"cricwordle_backend/internal/repository"
	"cricwordle_backend/internal/service"
	"cricwordle_backend/pkg/database"
	"cricwordle_backend/pkg/logger"
	"cricwordle_backend/pkg/monitoring"
	"cricwordle_backend/pkg/security"
	"cricwordle_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	// Config is the live snapshot; the config watcher swaps new values in
	// while request handlers load it concurrently.
	Config *config.Store
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user    *repository.UserRepository
	word    *repository.DailyWordRepository
	session *repository.PuzzleSessionRepository
}

type services struct {
	auth        *service.AuthService
	puzzle      *service.PuzzleService
	wordAdmin   *service.WordAdminService
	leaderboard *service.LeaderboardService
}

type controllers struct {
	auth        *controller.AuthController
	puzzle      *controller.PuzzleController
	admin       *controller.AdminController
	leaderboard *controller.LeaderboardController
	health      *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:    repository.NewUserRepository(db),
		word:    repository.NewDailyWordRepository(db),
		session: repository.NewPuzzleSessionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	return &services{
		auth:        service.NewAuthService(repos.user, a.Config),
		puzzle:      service.NewPuzzleService(repos.word, repos.session, cfg.Game, nil),
		wordAdmin:   service.NewWordAdminService(repos.word, rdb),
		leaderboard: service.NewLeaderboardService(repos.session, repos.user, rdb),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		puzzle:      controller.NewPuzzleController(s.puzzle),
		admin:       controller.NewAdminController(s.wordAdmin),
		leaderboard: controller.NewLeaderboardController(s.leaderboard, s.wordAdmin),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 300
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

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: config.NewStore(cfg),
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("cricwordle-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	return app
}

func (a *App) Run() {
	port := a.Config.Load().Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
