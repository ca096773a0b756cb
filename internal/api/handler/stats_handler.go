package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrilink/farm-market/internal/core/ports"
)

// StatsHandler aggregates marketplace counters for GET /api/stats.
type StatsHandler struct {
	users    ports.UserRepository
	products ports.ProductRepository
	activity ports.ActivityRepository
}

func NewStatsHandler(users ports.UserRepository, products ports.ProductRepository, activity ports.ActivityRepository) *StatsHandler {
	return &StatsHandler{users: users, products: products, activity: activity}
}

type statsResponse struct {
	Users    int64            `json:"users"`
	Products int64            `json:"products"`
	Activity map[string]int64 `json:"activity"`
}

// Stats returns user/product totals and the activity feed broken down by kind.
//
// @Summary      Marketplace statistics
// @Tags         ops
// @Produce      json
// @Success      200  {object}  statsResponse
// @Router       /api/stats [get]
func (h *StatsHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.users.Count(ctx)
	if err != nil {
		return err
	}
	products, err := h.products.Count(ctx)
	if err != nil {
		return err
	}
	activity, err := h.activity.CountByKind(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statsResponse{
		Users:    users,
		Products: products,
		Activity: activity,
	})
}
