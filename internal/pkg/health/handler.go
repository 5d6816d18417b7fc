package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sewamobil/sewamobil/internal/pkg/database"
	"github.com/sewamobil/sewamobil/internal/pkg/logger"
	"github.com/sewamobil/sewamobil/internal/pkg/nats"
)

// Checker reports the health of one dependency
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// PostgresChecker checks PostgreSQL connection health
type PostgresChecker struct {
	client *database.PostgresClient
}

// NewPostgresChecker creates a PostgreSQL health checker
func NewPostgresChecker(client *database.PostgresClient) *PostgresChecker {
	return &PostgresChecker{client: client}
}

// CheckHealth pings the database
func (p *PostgresChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	return p.client.GetDB().PingContext(ctx)
}

// RedisChecker checks Redis connection health
type RedisChecker struct {
	client *database.RedisClient
}

// NewRedisChecker creates a Redis health checker
func NewRedisChecker(client *database.RedisClient) *RedisChecker {
	return &RedisChecker{client: client}
}

// CheckHealth pings Redis
func (r *RedisChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Ping(ctx)
}

// NATSChecker checks NATS connection health
type NATSChecker struct {
	client *nats.Client
}

// NewNATSChecker creates a NATS health checker
func NewNATSChecker(client *nats.Client) *NATSChecker {
	return &NATSChecker{client: client}
}

// CheckHealth verifies the NATS connection
func (n *NATSChecker) CheckHealth(ctx context.Context) error {
	if n.client == nil {
		return nil
	}
	if !n.client.IsConnected() {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "NATS not connected")
	}
	return nil
}

// Service aggregates dependency checkers
type Service struct {
	checkers map[string]Checker
}

// NewService creates a health service
func NewService() *Service {
	return &Service{checkers: make(map[string]Checker)}
}

// AddChecker registers a named dependency checker
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type healthReport struct {
	Service      string                      `json:"service"`
	Version      string                      `json:"version,omitempty"`
	Status       string                      `json:"status"`
	Timestamp    time.Time                   `json:"timestamp"`
	Dependencies map[string]dependencyStatus `json:"dependencies,omitempty"`
}

// RegisterEndpoints registers /health and /health/detailed
func RegisterEndpoints(e *echo.Echo, serviceName, version string, service *Service) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, healthReport{
			Service:   serviceName,
			Version:   version,
			Status:    "ok",
			Timestamp: time.Now().UTC(),
		})
	})

	e.GET("/health/detailed", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		report := healthReport{
			Service:      serviceName,
			Version:      version,
			Status:       "ok",
			Timestamp:    time.Now().UTC(),
			Dependencies: make(map[string]dependencyStatus),
		}

		statusCode := http.StatusOK
		for name, checker := range service.checkers {
			if err := checker.CheckHealth(ctx); err != nil {
				logger.Warn("health check failed",
					logger.String("dependency", name),
					logger.Err(err))
				report.Dependencies[name] = dependencyStatus{Status: "down", Error: err.Error()}
				report.Status = "degraded"
				statusCode = http.StatusServiceUnavailable
			} else {
				report.Dependencies[name] = dependencyStatus{Status: "up"}
			}
		}

		return c.JSON(statusCode, report)
	})
}
