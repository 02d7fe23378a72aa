package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"warehouse/cmd"
	httpserver "warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/out/notifier"
	"warehouse/internal/adapters/out/postgres/deliveryrepo"
	"warehouse/internal/adapters/out/postgres/driverrepo"
	"warehouse/internal/adapters/out/postgres/orderrepo"
	"warehouse/internal/jobs"
	"warehouse/internal/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultNotificationQueueSize = 256

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := mustConnectDB(configs)

	published := metrics.NewNotificationsPublishedTotal()
	dropped := metrics.NewNotificationsDroppedTotal()
	transitions := metrics.NewOrderTransitionsTotal()
	prometheus.MustRegister(published, dropped, transitions)

	publisher := notifier.NewKafkaEventPublisher(
		notifier.NewWriter(configs.KafkaHost, configs.KafkaNotificationsTopic),
		queueSize(configs),
		logger,
		published,
		dropped,
		transitions,
	)
	defer publisher.Close()

	root := cmd.NewCompositionRoot(configs, db, publisher)

	jobManager := jobs.NewJobManager(
		root.CreateGetAllOrdersQueryHandler(),
		root.CreateGetAllDriversQueryHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:                envOrDefault("HTTP_PORT", "8080"),
		DBHost:                  envOrDefault("DB_HOST", "localhost"),
		DBPort:                  envOrDefault("DB_PORT", "5432"),
		DBUser:                  envOrDefault("DB_USER", "postgres"),
		DBPassword:              envOrDefault("DB_PASSWORD", "postgres"),
		DBName:                  envOrDefault("DB_NAME", "warehouse"),
		DBSslMode:               envOrDefault("DB_SSLMODE", "disable"),
		KafkaHost:               envOrDefault("KAFKA_HOST", "localhost:9092"),
		KafkaNotificationsTopic: envOrDefault("KAFKA_NOTIFICATIONS_TOPIC", "warehouse.order-events"),
		NotificationQueueSize:   envOrDefault("NOTIFICATION_QUEUE_SIZE", ""),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func queueSize(configs cmd.Config) int {
	size, err := strconv.Atoi(configs.NotificationQueueSize)
	if err != nil || size <= 0 {
		return defaultNotificationQueueSize
	}
	return size
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &driverrepo.DriverDTO{}, &deliveryrepo.DeliveryDTO{})
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func startWebServer(root *cmd.CompositionRoot, port string, logger *slog.Logger) {
	server := httpserver.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateBorrowOrderCommandHandler(),
		root.CreateAssignDriverCommandHandler(),
		root.CreateReturnOrderCommandHandler(),
		root.CreateDeliverOrderCommandHandler(),
		root.CreateRegisterDriverCommandHandler(),
		root.CreateSignUpDriverCommandHandler(),
		root.CreateSetDriverAvailabilityCommandHandler(),
		root.CreateGetAllOrdersQueryHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateGetAllDriversQueryHandler(),
		root.CreateGetDriverQueryHandler(),
		root.CreateGetAvailableDriverQueryHandler(),
		root.CreateGetDeliveryQueryHandler(),
	)

	e := echo.New()
	e.HideBanner = true

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Web server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}
}
