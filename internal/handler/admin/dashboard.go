package admin

import (
	"net/http"

	"trackerpro/internal/api"
	"trackerpro/internal/database"
	"trackerpro/internal/model"

	"github.com/labstack/echo/v4"
)

// activeBatches is a static placeholder until a batch entity exists.
const activeBatches = 15

// @Summary     Dashboard statistics
// @Description Active counts per role, pending count and their total
// @Tags        admin
// @Produce     json
// @Success     200 {object} api.Response
// @Failure     500 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /admin/dashboard-stats [get]
func DashboardStatsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		students, err := activeCountByRole(ctx, db, model.RoleStudent)
		if err != nil {
			return fail(c, err)
		}
		faculty, err := activeCountByRole(ctx, db, model.RoleFaculty)
		if err != nil {
			return fail(c, err)
		}
		hr, err := activeCountByRole(ctx, db, model.RoleHR)
		if err != nil {
			return fail(c, err)
		}
		pending, err := pendingCount(ctx, db)
		if err != nil {
			return fail(c, err)
		}

		return c.JSON(http.StatusOK, api.Response{
			Success: true,
			Data: api.DashboardStats{
				TotalStudents:   students,
				TotalFaculty:    faculty,
				TotalHR:         hr,
				PendingRequests: pending,
				ActiveBatches:   activeBatches,
				TotalUsers:      students + faculty + hr,
			},
		})
	}
}
