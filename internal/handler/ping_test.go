package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trackerpro/internal/cache"
	"trackerpro/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newPingCtx(e *echo.Echo) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPingHandler(t *testing.T) {
	e := echo.New()
	okCache := &cache.FakeCache{
		SetFn: func(ctx context.Context, _ string, _ any, _ time.Duration) *redis.StatusCmd {
			return redis.NewStatusCmd(ctx)
		},
	}

	// healthy
	ctx, rec := newPingCtx(e)
	h := PingHandler(&database.FakeDB{PingFn: func(context.Context) error { return nil }}, okCache)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "pong")

	// database down
	ctx, rec = newPingCtx(e)
	h = PingHandler(&database.FakeDB{PingFn: func(context.Context) error { return errors.New("down") }}, okCache)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "database unhealthy")

	// cache down
	ctx, rec = newPingCtx(e)
	badCache := &cache.FakeCache{
		SetFn: func(ctx context.Context, _ string, _ any, _ time.Duration) *redis.StatusCmd {
			cmd := redis.NewStatusCmd(ctx)
			cmd.SetErr(errors.New("down"))
			return cmd
		},
	}
	h = PingHandler(&database.FakeDB{PingFn: func(context.Context) error { return nil }}, badCache)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "cache unhealthy")
}
