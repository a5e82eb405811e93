// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"trackerpro/internal/cache"
	"trackerpro/internal/database"
	"trackerpro/internal/handler"
	"trackerpro/internal/handler/admin"
	"trackerpro/internal/handler/auth"
	"trackerpro/internal/middleware"
)

// Setup registers all routes. The admin group sits behind RequireAdmin.
func Setup(e *echo.Echo, db database.DB, cch cache.Cache) {
	api := e.Group("/api")

	api.GET("/ping", handler.PingHandler(db, cch))

	api.POST("/auth/register", auth.RegisterHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db))
	api.POST("/auth/admin/login", auth.AdminLoginHandler(db))
	api.POST("/auth/forgot-password", auth.ForgotPasswordHandler(db, cch))

	apiAdmin := api.Group("/admin", middleware.RequireAdmin)
	apiAdmin.GET("/pending-registrations", admin.PendingRegistrationsHandler(db))
	apiAdmin.POST("/approve-user/:user_id", admin.ApproveUserHandler(db))
	apiAdmin.POST("/reject-user/:user_id", admin.RejectUserHandler(db))
	apiAdmin.GET("/users", admin.ListUsersHandler(db))
	apiAdmin.PUT("/users/:user_id", admin.UpdateUserHandler(db))
	apiAdmin.DELETE("/users/:user_id", admin.DeleteUserHandler(db))
	apiAdmin.POST("/toggle-user-status/:user_id", admin.ToggleUserStatusHandler(db))
	apiAdmin.GET("/dashboard-stats", admin.DashboardStatsHandler(db))
}
