package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/tu-curso/course-service/internal/api/http"
	"github.com/tu-curso/course-service/internal/api/http/handlers"
	"github.com/tu-curso/course-service/internal/auth"
	"github.com/tu-curso/course-service/internal/config"
	"github.com/tu-curso/course-service/internal/events"
	"github.com/tu-curso/course-service/internal/observability"
	"github.com/tu-curso/course-service/internal/persistence"
	"github.com/tu-curso/course-service/internal/repository"
	"github.com/tu-curso/course-service/internal/service"
	"github.com/tu-curso/course-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	pomodoroRepo := repository.NewPomodoroRepository(pool)
	checkpointRepo := repository.NewCheckpointRepository(pool)
	friendshipRepo := repository.NewFriendshipRepository(pool)
	friendRequestRepo := repository.NewFriendRequestRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg.Auth, userRepo)
	userService := service.NewUserService(userRepo, friendshipRepo, dispatcher, cfg.Auth.BcryptCost)
	courseService := service.NewCourseService(courseRepo, userRepo)
	pomodoroService := service.NewPomodoroService(pomodoroRepo, userRepo)
	checkpointService := service.NewCheckpointService(checkpointRepo, courseRepo, dispatcher)
	friendRequestService := service.NewFriendRequestService(friendRequestRepo, friendshipRepo, userRepo, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	var claimsCache auth.ClaimsCache
	if cfg.Auth.ClaimsCache {
		claimsCache = auth.NewRedisClaimsCache(redis.Client, cfg.Auth.CacheTTL())
	}
	authenticator := auth.NewAuthenticator(authService.TokenManager(), userRepo, claimsCache, logger)

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(userService, authService),
		Admin:          handlers.NewAdminHandler(userService, courseService, authService),
		Courses:        handlers.NewCoursesHandler(courseService),
		Pomodoros:      handlers.NewPomodorosHandler(pomodoroService),
		Checkpoints:    handlers.NewCheckpointsHandler(checkpointService),
		FriendRequests: handlers.NewFriendRequestsHandler(friendRequestService),
		Authenticator:  authenticator,
		Policy:         auth.DefaultPolicy(),
		Logger:         logger,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
