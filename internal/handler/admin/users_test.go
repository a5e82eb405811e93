package admin

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"trackerpro/internal/database"
	"trackerpro/internal/model"
	"trackerpro/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestListUsersHandler(t *testing.T) {
	t.Cleanup(restore)
	e := echo.New()
	h := ListUsersHandler(&database.FakeDB{})

	// no filter lists every non-admin account
	allUsers = func(context.Context, database.DB) ([]model.User, error) {
		return []model.User{{ID: 1, Role: model.RoleStudent}, {ID: 2, Role: model.RoleHR}}, nil
	}
	ctx, rec := newAdminCtx(e, http.MethodGet, "/", "", "")
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"count":2`)

	// "all" behaves the same as no filter
	ctx, rec = newAdminCtx(e, http.MethodGet, "/?role=all", "", "")
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"count":2`)

	// role filter, case-insensitively
	usersByRole = func(_ context.Context, _ database.DB, role model.Role) ([]model.User, error) {
		require.Equal(t, model.RoleFaculty, role)
		return []model.User{{ID: 3, Role: model.RoleFaculty}}, nil
	}
	ctx, rec = newAdminCtx(e, http.MethodGet, "/?role=faculty", "", "")
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"count":1`)

	// unknown role filter
	ctx, rec = newAdminCtx(e, http.MethodGet, "/?role=PRINCIPAL", "", "")
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Invalid role: PRINCIPAL")

	// storage failure
	allUsers = func(context.Context, database.DB) ([]model.User, error) {
		return nil, errors.New("query failed")
	}
	ctx, rec = newAdminCtx(e, http.MethodGet, "/", "", "")
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUpdateUserHandler(t *testing.T) {
	t.Cleanup(restore)
	e := echo.New()
	e.Validator = okValidator{}
	h := UpdateUserHandler(&database.FakeDB{})

	// bad path param
	ctx, rec := newAdminCtx(e, http.MethodPut, "/", `{}`, "abc")
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// bind error
	eb := echo.New()
	eb.Binder = errBinder{}
	ctx, rec = newAdminCtx(eb, http.MethodPut, "/", `{}`, "7")
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid request body")

	// business failure
	updateUser = func(context.Context, database.DB, int, service.Update) (*model.User, error) {
		return nil, service.BusinessError("Email already exists")
	}
	ctx, rec = newAdminCtx(e, http.MethodPut, "/", `{"firstName":"J","email":"taken@x.com"}`, "7")
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Email already exists")

	// success lowercases the email
	updateUser = func(_ context.Context, _ database.DB, id int, in service.Update) (*model.User, error) {
		require.Equal(t, 7, id)
		require.Equal(t, "john@x.com", in.Email)
		require.Nil(t, in.Mobile)
		return &model.User{ID: 7, FirstName: in.FirstName, Email: in.Email, Role: model.RoleStudent}, nil
	}
	ctx, rec = newAdminCtx(e, http.MethodPut, "/", `{"firstName":"John","email":"JOHN@X.com"}`, "7")
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "User updated successfully!")
}

func TestToggleUserStatusHandler(t *testing.T) {
	t.Cleanup(restore)
	e := echo.New()
	h := ToggleUserStatusHandler(&database.FakeDB{})

	// admin target is refused
	toggleUserStatus = func(context.Context, database.DB, int) (*model.User, error) {
		return nil, service.BusinessError("Cannot modify admin user status")
	}
	ctx, rec := newAdminCtx(e, http.MethodPost, "/", "", "1")
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Cannot modify admin user status")

	// success
	toggleUserStatus = func(_ context.Context, _ database.DB, id int) (*model.User, error) {
		require.Equal(t, 7, id)
		return &model.User{ID: 7, Status: model.StatusInactive}, nil
	}
	ctx, rec = newAdminCtx(e, http.MethodPost, "/", "", "7")
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "User status updated successfully!")
}

func TestDeleteUserHandler(t *testing.T) {
	t.Cleanup(restore)
	e := echo.New()
	h := DeleteUserHandler(&database.FakeDB{})

	// admin target is refused
	deleteUser = func(context.Context, database.DB, int) error {
		return service.BusinessError("Cannot delete admin user")
	}
	ctx, rec := newAdminCtx(e, http.MethodDelete, "/", "", "1")
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Cannot delete admin user")

	// success
	deleteUser = func(_ context.Context, _ database.DB, id int) error {
		require.Equal(t, 7, id)
		return nil
	}
	ctx, rec = newAdminCtx(e, http.MethodDelete, "/", "", "7")
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "User deleted successfully!")
}
