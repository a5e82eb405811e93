package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trackerpro/internal/model"
	"trackerpro/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newAuthCtx(e *echo.Echo, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okNext(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func token(t *testing.T, role model.Role) string {
	t.Helper()
	tok, err := service.IssueAccessToken(model.User{ID: 7, Role: role}, time.Hour)
	require.NoError(t, err)
	return tok
}

func TestRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	e := echo.New()

	// missing header
	ctx, _ := newAuthCtx(e, "")
	err := RequireAuth(okNext)(ctx)
	require.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)

	// malformed header
	ctx, _ = newAuthCtx(e, "Token abc")
	err = RequireAuth(okNext)(ctx)
	require.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)

	// garbage token
	ctx, _ = newAuthCtx(e, "Bearer not-a-jwt")
	err = RequireAuth(okNext)(ctx)
	require.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)

	// valid token reaches the handler with claims in context
	ctx, rec := newAuthCtx(e, "Bearer "+token(t, model.RoleStudent))
	err = RequireAuth(func(c echo.Context) error {
		claims := c.Get(ContextUserKey).(*service.CustomClaims)
		require.Equal(t, 7, claims.UserID)
		require.Equal(t, model.RoleStudent, claims.Role)
		return okNext(c)
	})(ctx)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	// lowercase scheme is accepted
	ctx, rec = newAuthCtx(e, "bearer "+token(t, model.RoleStudent))
	require.NoError(t, RequireAuth(okNext)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	e := echo.New()

	// non-admin token is forbidden
	ctx, _ := newAuthCtx(e, "Bearer "+token(t, model.RoleFaculty))
	err := RequireAdmin(okNext)(ctx)
	require.Equal(t, http.StatusForbidden, err.(*echo.HTTPError).Code)

	// admin token passes
	ctx, rec := newAuthCtx(e, "Bearer "+token(t, model.RoleAdmin))
	require.NoError(t, RequireAdmin(okNext)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	// no token still fails authentication first
	ctx, _ = newAuthCtx(e, "")
	err = RequireAdmin(okNext)(ctx)
	require.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
}
