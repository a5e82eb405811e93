package auth

import (
	"net/http"

	"trackerpro/internal/api"
	"trackerpro/internal/cache"
	"trackerpro/internal/database"

	"github.com/labstack/echo/v4"
)

// ForgotPasswordHandler answers the same acknowledgment whether or not the
// identifier matches an account, so it cannot be used to enumerate accounts.
// @Summary     Request a password reset
// @Description Mints a short-lived reset token when the email or mobile matches an account
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.ForgotPasswordRequest true "email or mobile"
// @Success     200 {object} api.Response
// @Failure     400 {object} api.Response
// @Failure     500 {object} api.Response
// @Router      /auth/forgot-password [post]
func ForgotPasswordHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ForgotPasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("invalid request body"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail(err.Error()))
		}

		if err := requestPasswordReset(c.Request().Context(), db, cch, req.EmailOrMobile); err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fail("internal server error"))
		}

		return c.JSON(http.StatusOK, api.Response{
			Success: true,
			Message: "If the email/mobile exists in our system, you will receive password reset instructions.",
		})
	}
}
