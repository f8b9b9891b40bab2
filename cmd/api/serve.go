package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"bloodlink/docs"
	"bloodlink/internal/auth"
	"bloodlink/internal/broker"
	"bloodlink/internal/cache"
	"bloodlink/internal/config"
	"bloodlink/internal/database"
	"bloodlink/internal/database/migration"
	handlers "bloodlink/internal/http/handler"
	"bloodlink/internal/http/middleware"
	"bloodlink/internal/logging"
	"bloodlink/internal/otel"
	"bloodlink/internal/repository/postgres"
	"bloodlink/internal/service"
	"bloodlink/internal/storage"
)

const shutdownTimeout = 10 * time.Second

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "Start the HTTP server",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "migrate",
			Usage: "Create the schema on startup when it is missing",
			Value: true,
		},
	},
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	logger := logging.New(os.Stdout, cfg.Location())

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		tctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(tctx); err != nil {
			logger.WithError(err).Warn("tracing_shutdown_failed")
		}
	}()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if cCtx.Bool("migrate") {
		if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
			return err
		}
	}

	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		return fmt.Errorf("failed to initialize object storage: %w", err)
	}

	dashCache, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer dashCache.Close()

	publisher, err := broker.NewKafka(cfg.Kafka, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize kafka publisher: %w", err)
	}
	defer publisher.Close()

	donorRepo := postgres.NewDonorPostgres(db)
	notificationRepo := postgres.NewNotificationPostgres(db)
	donationRepo := postgres.NewDonationPostgres(db)

	svc := handlers.Services{
		Donors:   service.NewDonorService(donorRepo, notificationRepo, cfg.Matching.DefaultRadiusKm, logger),
		Profiles: service.NewProfileService(donorRepo),
		BloodRequests: service.NewBloodRequestService(
			postgres.NewBloodRequestPostgres(db),
			donorRepo,
			notificationRepo,
			publisher,
			cfg.Matching.EmergencyNotifyLimit,
			logger,
		),
		Donations: service.NewDonationService(donationRepo, dashCache, logger),
		Inventory: service.NewInventoryService(postgres.NewInventoryPostgres(db)),
		Hospitals: service.NewHospitalService(postgres.NewHospitalPostgres(db)),
		Events:    service.NewEventService(postgres.NewEventPostgres(db)),
		Certificates: service.NewCertificateService(
			objStore,
			postgres.NewCertificatePostgres(db),
			donorRepo,
			donationRepo,
			time.Duration(cfg.MinIO.PresignExpirySec)*time.Second,
			logger,
		),
		Queue:       service.NewQueueService(postgres.NewQueuePostgres(db), cfg.Location()),
		Eligibility: service.NewEligibilityService(postgres.NewHealthCheckPostgres(db)),
		Dashboard: service.NewDashboardService(
			postgres.NewDashboardPostgres(db),
			dashCache,
			time.Duration(cfg.Redis.DashboardTTLSec)*time.Second,
			logger,
		),
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == middleware.MetricsPath
	})))
	// RequestID runs inside the server span so the id is recorded on it
	app.Use(middleware.RequestID())
	app.Use(metrics.Handler())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(logger))

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, db, svc, auth.NewVerifier(cfg.Auth))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		logger.WithFields(logrus.Fields{"addr": addr, "timezone": cfg.Location().String()}).Info("server_starting")
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}
	logger.Info("shutdown_signal_received")

	return app.ShutdownWithTimeout(shutdownTimeout)
}
