package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"trackerpro/internal/service"

	"github.com/labstack/echo/v4"
)

// helper to build echo context with a JSON body
func newJSONCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type errBinder struct{}

func (errBinder) Bind(i any, c echo.Context) error { return errors.New("bind") }

type errValidator struct{}

func (errValidator) Validate(i any) error { return errors.New("v") }

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

func restore() {
	registerUser = service.RegisterUser
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
	requestPasswordReset = service.RequestPasswordReset
}
