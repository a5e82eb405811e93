package auth

import (
	"net/http"
	"strings"
	"time"

	"trackerpro/internal/api"
	"trackerpro/internal/database"
	"trackerpro/internal/model"

	"github.com/labstack/echo/v4"
)

const (
	sessionTTL  = 24 * time.Hour
	rememberTTL = 30 * 24 * time.Hour
)

// @Summary     Log in
// @Description Authenticates by email and password; non-admin accounts must be ACTIVE
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "credentials"
// @Success     200 {object} api.Response
// @Failure     400 {object} api.Response
// @Failure     500 {object} api.Response
// @Router      /auth/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("invalid request body"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail(err.Error()))
		}

		user, err := authenticateUser(c.Request().Context(), db, strings.ToLower(req.Email), req.Password)
		if err != nil {
			return fail(c, err)
		}

		ttl := sessionTTL
		if req.RememberMe {
			ttl = rememberTTL
		}
		token, err := issueAccessToken(*user, ttl)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fail("internal server error"))
		}

		return c.JSON(http.StatusOK, api.Response{
			Success: true,
			Message: "Login successful!",
			User:    api.NewUserResponse(user),
			Token:   token,
		})
	}
}

// AdminLoginHandler runs the full authentication first, then layers the role
// check on top, so a non-ACTIVE non-admin still fails for the status reason.
// @Summary     Admin log in
// @Description Authenticates and additionally requires the ADMIN role
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "credentials"
// @Success     200 {object} api.Response
// @Failure     400 {object} api.Response
// @Failure     500 {object} api.Response
// @Router      /auth/admin/login [post]
func AdminLoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("invalid request body"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail(err.Error()))
		}

		user, err := authenticateUser(c.Request().Context(), db, strings.ToLower(req.Email), req.Password)
		if err != nil {
			return fail(c, err)
		}
		if user.Role != model.RoleAdmin {
			return c.JSON(http.StatusBadRequest, api.Fail("Access denied. Admin privileges required."))
		}

		token, err := issueAccessToken(*user, sessionTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fail("internal server error"))
		}

		return c.JSON(http.StatusOK, api.Response{
			Success: true,
			Message: "Admin login successful!",
			User:    api.NewUserResponse(user),
			Token:   token,
		})
	}
}
