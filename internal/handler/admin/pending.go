package admin

import (
	"net/http"

	"trackerpro/internal/api"
	"trackerpro/internal/database"

	"github.com/labstack/echo/v4"
)

// @Summary     List pending registrations
// @Description Returns PENDING accounts, newest first
// @Tags        admin
// @Produce     json
// @Success     200 {object} api.Response
// @Failure     500 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /admin/pending-registrations [get]
func PendingRegistrationsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := pendingRegistrations(c.Request().Context(), db)
		if err != nil {
			return fail(c, err)
		}
		count := len(users)
		return c.JSON(http.StatusOK, api.Response{
			Success: true,
			Data:    api.NewUserResponses(users),
			Count:   &count,
		})
	}
}

// @Summary     Approve a pending registration
// @Description Moves a PENDING account to ACTIVE
// @Tags        admin
// @Produce     json
// @Param       user_id path int true "user ID"
// @Success     200 {object} api.Response
// @Failure     400 {object} api.Response
// @Failure     500 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /admin/approve-user/{user_id} [post]
func ApproveUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := userIDParam(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("invalid user ID"))
		}
		user, err := approveUser(c.Request().Context(), db, id)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, api.Response{
			Success: true,
			Message: "User approved successfully!",
			User:    api.NewUserResponse(user),
		})
	}
}

// @Summary     Reject a pending registration
// @Description Moves a PENDING account to REJECTED (terminal)
// @Tags        admin
// @Produce     json
// @Param       user_id path int true "user ID"
// @Success     200 {object} api.Response
// @Failure     400 {object} api.Response
// @Failure     500 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /admin/reject-user/{user_id} [post]
func RejectUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := userIDParam(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("invalid user ID"))
		}
		if err := rejectUser(c.Request().Context(), db, id); err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, api.Response{
			Success: true,
			Message: "User rejected successfully!",
		})
	}
}
