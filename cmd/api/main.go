package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/Naveen122004/portfolio-service/internal/api/http"
	"github.com/Naveen122004/portfolio-service/internal/api/http/handlers"
	"github.com/Naveen122004/portfolio-service/internal/auth"
	"github.com/Naveen122004/portfolio-service/internal/config"
	"github.com/Naveen122004/portfolio-service/internal/events"
	"github.com/Naveen122004/portfolio-service/internal/observability"
	"github.com/Naveen122004/portfolio-service/internal/persistence"
	"github.com/Naveen122004/portfolio-service/internal/repository"
	"github.com/Naveen122004/portfolio-service/internal/service"
	"github.com/Naveen122004/portfolio-service/internal/worker"
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
	testimonialRepo := repository.NewTestimonialRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	roleRepo := repository.NewRoleRepository(pool)
	contactRepo := repository.NewContactRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	revoker := auth.NewRedisRevoker(redis.Client)

	testimonialService := service.NewTestimonialService(service.TestimonialDependencies{
		TestimonialRepo: testimonialRepo,
		Dispatcher:      dispatcher,
	})
	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo: userRepo,
		RoleRepo: roleRepo,
		Revoker:  revoker,
	})
	if pool != nil {
		if err := authService.EnsureBootstrapAdmin(ctx); err != nil {
			logger.Warn("bootstrap admin grant failed", zap.Error(err))
		}
	}

	contentService := service.NewContentService()
	contactService := service.NewContactService(contactRepo, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), revoker, userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Testimonials:   handlers.NewTestimonialsHandler(testimonialService),
		Admin:          handlers.NewAdminHandler(testimonialService),
		Users:          handlers.NewUsersHandler(authService),
		Content:        handlers.NewContentHandler(contentService),
		Contact:        handlers.NewContactHandler(contactService),
		AuthMiddleware: authMiddleware,
		RoleRepo:       roleRepo,
		Metrics:        metrics,
		SubmitLimiter:  httptransport.SubmissionRateLimiter(cfg.Submission),
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
