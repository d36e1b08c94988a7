package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"grocery/cmd"
	httpin "grocery/internal/adapters/in/http"
	"grocery/internal/adapters/out/geo"
	"grocery/internal/adapters/out/kafka"
	"grocery/internal/adapters/out/postgres/agentdir"
	"grocery/internal/adapters/out/postgres/orderrepo"
	"grocery/internal/adapters/out/postgres/taskrepo"
	"grocery/internal/adapters/out/redis/cartstore"
	"grocery/internal/core/ports"
	"grocery/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultCartTTLHours = 24

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("application failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	configs := getConfigs(logger)

	gormDB, err := openDatabase(configs)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := migrateDatabase(gormDB); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	redisClient := goredis.NewClient(&goredis.Options{Addr: configs.RedisAddr})
	defer redisClient.Close()

	cartStore, err := cartstore.NewRedisCartStore(redisClient, cartTTL(configs, logger))
	if err != nil {
		return fmt.Errorf("create cart store: %w", err)
	}

	locator, err := geo.NewHTTPGeoLocator(configs.GeoServiceURL)
	if err != nil {
		return fmt.Errorf("create geo locator: %w", err)
	}

	// Event publishing is optional. Without a broker the disabled publishers
	// drop events and clients rely on polling reads.
	var publisher ports.OrderEventPublisher = kafka.DisabledOrderStatusPublisher{}
	var notifier ports.CartChangeNotifier = kafka.DisabledCartBadgePublisher{}
	if configs.KafkaHost != "" {
		statusPublisher, err := kafka.NewOrderStatusPublisher(logger, configs.KafkaOrderStatusTopic, configs.KafkaHost)
		if err != nil {
			return fmt.Errorf("create order status publisher: %w", err)
		}
		defer statusPublisher.Close()
		publisher = statusPublisher

		badgePublisher, err := kafka.NewCartBadgePublisher(logger, configs.KafkaCartBadgeTopic, configs.KafkaHost)
		if err != nil {
			return fmt.Errorf("create cart badge publisher: %w", err)
		}
		defer badgePublisher.Close()
		notifier = badgePublisher
	} else {
		logger.Info("kafka host not configured, event publishing disabled")
	}

	root := cmd.NewCompositionRoot(configs, gormDB, cartStore, notifier, locator, publisher)

	jobManager := buildJobs(&root, configs, logger)
	if err := jobManager.StartAll(); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	return serve(&root, configs.HTTPPort, logger)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Warn("no .env file loaded, relying on environment", "error", err)
	}

	return cmd.Config{
		HTTPPort:              os.Getenv("HTTP_PORT"),
		DBHost:                os.Getenv("DB_HOST"),
		DBPort:                os.Getenv("DB_PORT"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                os.Getenv("DB_NAME"),
		DBSslMode:             os.Getenv("DB_SSLMODE"),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		CartTTLHours:          os.Getenv("CART_TTL_HOURS"),
		GeoServiceURL:         os.Getenv("GEO_SERVICE_URL"),
		KafkaHost:             os.Getenv("KAFKA_HOST"),
		KafkaOrderStatusTopic: os.Getenv("KAFKA_ORDER_STATUS_TOPIC"),
		KafkaCartBadgeTopic:   os.Getenv("KAFKA_CART_BADGE_TOPIC"),
		AutoAssignSchedule:    os.Getenv("AUTO_ASSIGN_CRON"),
	}
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	return gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
}

func migrateDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&taskrepo.TaskDTO{},
		&agentdir.AgentDTO{},
	)
}

func cartTTL(configs cmd.Config, logger *slog.Logger) time.Duration {
	hours := defaultCartTTLHours
	if configs.CartTTLHours != "" {
		parsed, err := strconv.Atoi(configs.CartTTLHours)
		if err != nil || parsed <= 0 {
			logger.Warn("invalid CART_TTL_HOURS, using default",
				"value", configs.CartTTLHours, "defaultHours", defaultCartTTLHours)
		} else {
			hours = parsed
		}
	}

	return time.Duration(hours) * time.Hour
}

// buildJobs registers background jobs. Auto assignment only runs when a
// schedule is configured.
func buildJobs(root *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) *jobs.JobManager {
	if configs.AutoAssignSchedule == "" {
		return jobs.NewJobManager()
	}

	autoAssign := jobs.NewAutoAssignmentJob(
		root.CreateAssignAgentCommandHandler(),
		root.OrderRepository(),
		root.TaskRepository(),
		root.AgentDirectory(),
		configs.AutoAssignSchedule,
		logger,
	)

	return jobs.NewJobManager(autoAssign)
}

func serve(root *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	server := httpin.NewServer(
		root.CreateAddCartItemCommandHandler(),
		root.CreateSetCartItemQuantityCommandHandler(),
		root.CreateRemoveCartItemCommandHandler(),
		root.CreateSubmitOrderCommandHandler(),
		root.CreateAssignAgentCommandHandler(),
		root.CreateAdvanceTaskCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateGetCartQueryHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateGetCustomerOrdersQueryHandler(),
		root.CreateGetPendingOrdersQueryHandler(),
		root.CreateGetAgentTasksQueryHandler(),
		root.CreateGetInvoiceQueryHandler(),
		root.CreateExportOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("http server starting", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		logger.Info("http server shutting down")
		return e.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
