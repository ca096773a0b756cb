package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agrilink/farm-market/internal/core/ports"
)

// HealthHandler handles GET /health — liveness plus store counts.
type HealthHandler struct {
	env      string
	users    ports.UserRepository
	products ports.ProductRepository
}

func NewHealthHandler(env string, users ports.UserRepository, products ports.ProductRepository) *HealthHandler {
	return &HealthHandler{env: env, users: users, products: products}
}

type healthCounts struct {
	Users    int64 `json:"users"`
	Products int64 `json:"products"`
}

type healthResponse struct {
	Status      string       `json:"status"`
	Environment string       `json:"environment"`
	Counts      healthCounts `json:"counts"`
}

// Liveness reports that the process is up and how much data it holds.
//
// @Summary      Liveness probe with store counts
// @Tags         ops
// @Produce      json
// @Success      200  {object}  healthResponse
// @Router       /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.users.Count(ctx)
	if err != nil {
		return err
	}
	products, err := h.products.Count(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, healthResponse{
		Status:      "ok",
		Environment: h.env,
		Counts:      healthCounts{Users: users, Products: products},
	})
}

// ReadinessHandler handles GET /health/ready — checks optional external
// dependencies. Either client may be nil when the deployment runs purely
// in-memory; absent dependencies are reported as skipped.
type ReadinessHandler struct {
	mongo *mongo.Database
	redis *redis.Client
}

func NewReadinessHandler(db *mongo.Database, rdb *redis.Client) *ReadinessHandler {
	return &ReadinessHandler{mongo: db, redis: rdb}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

// Readiness reports whether configured dependencies answer pings.
//
// @Summary      Readiness probe
// @Tags         ops
// @Produce      json
// @Success      200  {object}  readinessResponse
// @Failure      503  {object}  readinessResponse
// @Router       /health/ready [get]
func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	if h.mongo != nil {
		if err := h.mongo.Client().Ping(ctx, nil); err != nil {
			deps["mongodb"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
		} else {
			deps["mongodb"] = dependencyStatus{Status: "ok"}
		}
	} else {
		deps["mongodb"] = dependencyStatus{Status: "skipped"}
	}

	if h.redis != nil {
		if _, err := h.redis.Ping(ctx).Result(); err != nil {
			deps["redis"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
		} else {
			deps["redis"] = dependencyStatus{Status: "ok"}
		}
	} else {
		deps["redis"] = dependencyStatus{Status: "skipped"}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{Status: status, Dependencies: deps})
}
