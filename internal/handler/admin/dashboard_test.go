package admin

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"trackerpro/internal/database"
	"trackerpro/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestDashboardStatsHandler(t *testing.T) {
	t.Cleanup(restore)
	e := echo.New()
	h := DashboardStatsHandler(&database.FakeDB{})

	// success sums the per-role active counts into the user total
	activeCountByRole = func(_ context.Context, _ database.DB, role model.Role) (int, error) {
		switch role {
		case model.RoleStudent:
			return 10, nil
		case model.RoleFaculty:
			return 4, nil
		case model.RoleHR:
			return 1, nil
		}
		t.Fatalf("unexpected role %s", role)
		return 0, nil
	}
	pendingCount = func(context.Context, database.DB) (int, error) { return 3, nil }

	ctx, rec := newAdminCtx(e, http.MethodGet, "/", "", "")
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"totalStudents":10`)
	require.Contains(t, rec.Body.String(), `"totalFaculty":4`)
	require.Contains(t, rec.Body.String(), `"totalHR":1`)
	require.Contains(t, rec.Body.String(), `"pendingRequests":3`)
	require.Contains(t, rec.Body.String(), `"totalUsers":15`)

	// a count failure fails the whole endpoint
	pendingCount = func(context.Context, database.DB) (int, error) { return 0, errors.New("query failed") }
	ctx, rec = newAdminCtx(e, http.MethodGet, "/", "", "")
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
