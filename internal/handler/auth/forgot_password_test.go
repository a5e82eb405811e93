package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"trackerpro/internal/cache"
	"trackerpro/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestForgotPasswordHandler(t *testing.T) {
	t.Cleanup(restore)

	const ack = "If the email/mobile exists in our system, you will receive password reset instructions."

	// bind error
	e := echo.New()
	e.Binder = errBinder{}
	ctx, rec := newJSONCtx(e, "")
	h := ForgotPasswordHandler(&database.FakeDB{}, &cache.FakeCache{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// matching account answers the generic acknowledgment
	e = echo.New()
	e.Validator = okValidator{}
	requestPasswordReset = func(_ context.Context, _ database.DB, _ cache.Cache, id string) error {
		require.Equal(t, "john@x.com", id)
		return nil
	}
	ctx, rec = newJSONCtx(e, `{"emailOrMobile":"john@x.com"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), ack)

	// non-matching account answers the exact same acknowledgment
	requestPasswordReset = func(context.Context, database.DB, cache.Cache, string) error { return nil }
	ctx, rec = newJSONCtx(e, `{"emailOrMobile":"ghost@x.com"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), ack)

	// infrastructure failure stays generic
	requestPasswordReset = func(context.Context, database.DB, cache.Cache, string) error {
		return errors.New("redis down")
	}
	ctx, rec = newJSONCtx(e, `{"emailOrMobile":"john@x.com"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "redis down")
}
