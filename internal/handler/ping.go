package handler

import (
	"net/http"
	"time"

	"trackerpro/internal/api"
	"trackerpro/internal/cache"
	"trackerpro/internal/database"

	"github.com/labstack/echo/v4"
)

// PingResponse is the health check reply.
// swagger:model PingResponse
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// @Summary     Health Check
// @Description Returns pong after checking database and cache connectivity
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.Response
// @Router      /ping [get]
func PingHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fail("database unhealthy"))
		}
		if err := cch.Set(c.Request().Context(), "ping", "pong", time.Second).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fail("cache unhealthy"))
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
