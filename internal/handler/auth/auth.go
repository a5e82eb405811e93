package auth

import (
	"net/http"

	"trackerpro/internal/api"
	"trackerpro/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	registerUser         = service.RegisterUser
	authenticateUser     = service.AuthenticateUser
	issueAccessToken     = service.IssueAccessToken
	requestPasswordReset = service.RequestPasswordReset
)

// fail maps a service error onto the envelope: business failures answer 400
// with their message, everything else answers 500 without leaking internals.
func fail(c echo.Context, err error) error {
	if service.IsBusiness(err) {
		return c.JSON(http.StatusBadRequest, api.Fail(err.Error()))
	}
	return c.JSON(http.StatusInternalServerError, api.Fail("internal server error"))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
