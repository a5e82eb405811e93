package admin

import (
	"errors"
	"net/http/httptest"
	"strings"

	"trackerpro/internal/service"

	"github.com/labstack/echo/v4"
)

// helper to build echo context with an optional user_id path param
func newAdminCtx(e *echo.Echo, method, target, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.SetParamNames("user_id")
		c.SetParamValues(userID)
	}
	return c, rec
}

type errBinder struct{}

func (errBinder) Bind(i any, c echo.Context) error { return errors.New("bind") }

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

func restore() {
	pendingRegistrations = service.PendingRegistrations
	approveUser = service.ApproveUser
	rejectUser = service.RejectUser
	allUsers = service.AllUsers
	usersByRole = service.UsersByRole
	updateUser = service.UpdateUser
	deleteUser = service.DeleteUser
	toggleUserStatus = service.ToggleUserStatus
	pendingCount = service.PendingCount
	activeCountByRole = service.ActiveCountByRole
}
