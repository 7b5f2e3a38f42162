package http

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"telecom/api"
	"telecom/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	BaseURL = "/api/v1"

	healthTimeout = 2 * time.Second
)

// HealthChecker is satisfied by *sql.DB.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

type RouterConfig struct {
	AppName string
	Version string

	// CommissionRateLimit is the sustained commissioning rate allowed per client
	// IP in requests per second. Zero disables the limiter.
	CommissionRateLimit float64
	CommissionBurst     int

	EchoLogLevel log.Lvl
}

type appInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// NewRouter builds the echo instance serving the API, its documentation and the
// operational endpoints.
func NewRouter(
	ctx context.Context,
	server *Server,
	health HealthChecker,
	cfg RouterConfig,
	logger *zap.Logger,
) (*echo.Echo, error) {
	doc, err := api.Load(ctx)
	if err != nil {
		return nil, err
	}
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	registerSwaggerDoc(docJSON)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(cfg.EchoLogLevel)
	e.HTTPErrorHandler = NewErrorHandler(logger)
	e.Validator = NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))
	e.Use(ActorMiddleware())

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, appInfo{Name: cfg.AppName, Version: cfg.Version})
	})
	e.GET("/health", healthHandler(health))
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, docJSON)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	routeMiddlewares := servers.RouteMiddlewares{}
	if cfg.CommissionRateLimit > 0 {
		routeMiddlewares["CommissionLine"] = []echo.MiddlewareFunc{
			commissionRateLimiter(cfg.CommissionRateLimit, cfg.CommissionBurst),
		}
	}
	servers.RegisterHandlersWithBaseURL(e, server, BaseURL, routeMiddlewares)

	return e, nil
}

func healthHandler(health HealthChecker) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
		defer cancel()

		if health == nil || health.PingContext(ctx) != nil {
			return c.JSON(http.StatusServiceUnavailable, servers.Health{Status: "unhealthy", Database: "disconnected"})
		}
		return c.JSON(http.StatusOK, servers.Health{Status: "healthy", Database: "connected"})
	}
}

func commissionRateLimiter(limit float64, burst int) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(limit),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
	})
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				logger.Warn("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("request", fields...)
			return nil
		},
	})
}

type swaggerDoc struct {
	doc string
}

func (d swaggerDoc) ReadDoc() string { return d.doc }

var registerOnce sync.Once

// registerSwaggerDoc publishes the document to swag, which panics on a second
// registration under the same name.
func registerSwaggerDoc(doc []byte) {
	registerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{doc: string(doc)})
	})
}
