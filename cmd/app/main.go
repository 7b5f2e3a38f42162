package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"telecom/cmd"
	httpin "telecom/internal/adapters/in/http"
	"telecom/internal/adapters/out/postgres"

	"github.com/cenkalti/backoff/v4"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	dbConnectAttempts = 10
	shutdownTimeout   = 15 * time.Second
)

func main() {
	// The .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load(".env")

	configs, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(configs.ZapLevel())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, configs, logger); err != nil {
		logger.Fatal("application stopped", zap.Error(err))
	}
}

func run(ctx context.Context, configs cmd.Config, logger *zap.Logger) error {
	gormDB, err := connectDB(ctx, configs, logger)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()

	if err = postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := httpin.NewRouter(ctx, app.CreateHTTPServer(), sqlDB, app.RouterConfig(), logger)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	return startWebServer(ctx, e, configs.HTTPPort, logger)
}

type webServer interface {
	Start(address string) error
	Shutdown(ctx context.Context) error
}

func startWebServer(ctx context.Context, e webServer, port string, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		address := fmt.Sprintf("0.0.0.0:%s", port)
		logger.Info("http server listening", zap.String("address", address))
		errCh <- e.Start(address)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// connectDB retries with exponential backoff because the database usually
// starts alongside the service.
func connectDB(ctx context.Context, configs cmd.Config, logger *zap.Logger) (*gorm.DB, error) {
	var gormDB *gorm.DB

	operation := func() error {
		db, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return backoff.Permanent(err)
		}
		if err = sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			return err
		}
		gormDB = db
		return nil
	}

	notify := func(err error, next time.Duration) {
		logger.Warn("database is not reachable yet", zap.Error(err), zap.Duration("retry_in", next))
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), dbConnectAttempts), ctx)
	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return gormDB, nil
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return config.Build()
}
