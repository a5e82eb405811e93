package auth

import (
	"net/http"
	"strings"

	"trackerpro/internal/api"
	"trackerpro/internal/database"
	"trackerpro/internal/service"

	"github.com/labstack/echo/v4"
)

// @Summary     Register a new account
// @Description Creates a PENDING account awaiting admin approval
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "registration fields"
// @Success     201 {object} api.Response
// @Failure     400 {object} api.Response
// @Failure     500 {object} api.Response
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("invalid request body"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail(err.Error()))
		}

		user, err := registerUser(c.Request().Context(), db, service.Registration{
			FirstName:       req.FirstName,
			LastName:        optional(req.LastName),
			Email:           strings.ToLower(req.Email),
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
			Mobile:          optional(req.Mobile),
			RoleCategory:    req.RoleCategory,
		})
		if err != nil {
			return fail(c, err)
		}

		return c.JSON(http.StatusCreated, api.Response{
			Success: true,
			Message: "Registration successful! Your account is pending approval.",
			User:    api.NewUserResponse(user),
		})
	}
}
