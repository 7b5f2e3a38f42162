package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	AppName = "telecom"
	Version = "1.0.0"

	defaultProvisioningDelay   = 2 * time.Second
	defaultIdempotencyTTL      = 10 * time.Minute
	defaultCommissionRateLimit = 5
	defaultCommissionBurst     = 10
)

type Config struct {
	HTTPPort   string `validate:"required,numeric"`
	DBHost     string `validate:"required"`
	DBPort     string `validate:"required,numeric"`
	DBUser     string `validate:"required"`
	DBPassword string
	DBName     string `validate:"required"`
	DBSslMode  string `validate:"oneof=disable allow prefer require verify-ca verify-full"`

	ProvisioningDelay       time.Duration `validate:"gte=0"`
	IdempotencyTTL          time.Duration `validate:"gt=0"`
	InventoryReportSchedule string
	LogLevel                string  `validate:"oneof=debug info warn error"`
	CommissionRateLimit     float64 `validate:"gte=0"`
	CommissionBurst         int     `validate:"gte=1"`
}

// LoadConfig reads the configuration through getenv, applies defaults for
// optional keys and validates the result.
func LoadConfig(getenv func(string) string) (Config, error) {
	provisioningDelay, delayErr := durationOr(getenv("PROVISIONING_DELAY"), defaultProvisioningDelay)
	idempotencyTTL, ttlErr := durationOr(getenv("IDEMPOTENCY_TTL"), defaultIdempotencyTTL)
	rateLimit, rateErr := floatOr(getenv("COMMISSION_RATE_LIMIT"), defaultCommissionRateLimit)
	burst, burstErr := intOr(getenv("COMMISSION_BURST"), defaultCommissionBurst)
	if err := errors.Join(delayErr, ttlErr, rateErr, burstErr); err != nil {
		return Config{}, err
	}

	config := Config{
		HTTPPort:                stringOr(getenv("HTTP_PORT"), "8080"),
		DBHost:                  getenv("DB_HOST"),
		DBPort:                  stringOr(getenv("DB_PORT"), "5432"),
		DBUser:                  getenv("DB_USER"),
		DBPassword:              getenv("DB_PASSWORD"),
		DBName:                  getenv("DB_NAME"),
		DBSslMode:               stringOr(getenv("DB_SSLMODE"), "disable"),
		ProvisioningDelay:       provisioningDelay,
		IdempotencyTTL:          idempotencyTTL,
		InventoryReportSchedule: getenv("INVENTORY_REPORT_SCHEDULE"),
		LogLevel:                stringOr(getenv("LOG_LEVEL"), "info"),
		CommissionRateLimit:     rateLimit,
		CommissionBurst:         burst,
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	return validator.New().Struct(c)
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) ZapLevel() zapcore.Level {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zap.InfoLevel
	}
	return level
}

func stringOr(value string, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func durationOr(value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", value, err)
	}
	return d, nil
}

func floatOr(value string, fallback float64) (float64, error) {
	if value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", value, err)
	}
	return f, nil
}

func intOr(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", value, err)
	}
	return i, nil
}

func echoLogLevel(level zapcore.Level) log.Lvl {
	switch level { //nolint:exhaustive // remaining levels are above error
	case zapcore.DebugLevel:
		return log.DEBUG
	case zapcore.InfoLevel:
		return log.INFO
	case zapcore.WarnLevel:
		return log.WARN
	default:
		return log.ERROR
	}
}
