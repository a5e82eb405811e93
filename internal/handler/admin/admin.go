package admin

import (
	"net/http"
	"strconv"

	"trackerpro/internal/api"
	"trackerpro/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	pendingRegistrations = service.PendingRegistrations
	approveUser          = service.ApproveUser
	rejectUser           = service.RejectUser
	allUsers             = service.AllUsers
	usersByRole          = service.UsersByRole
	updateUser           = service.UpdateUser
	deleteUser           = service.DeleteUser
	toggleUserStatus     = service.ToggleUserStatus
	pendingCount         = service.PendingCount
	activeCountByRole    = service.ActiveCountByRole
)

// fail maps a service error onto the envelope: business failures answer 400
// with their message, everything else answers 500 without leaking internals.
func fail(c echo.Context, err error) error {
	if service.IsBusiness(err) {
		return c.JSON(http.StatusBadRequest, api.Fail(err.Error()))
	}
	return c.JSON(http.StatusInternalServerError, api.Fail("internal server error"))
}

func userIDParam(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("user_id"))
}
