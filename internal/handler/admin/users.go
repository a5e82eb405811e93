package admin

import (
	"net/http"
	"strings"

	"trackerpro/internal/api"
	"trackerpro/internal/database"
	"trackerpro/internal/model"
	"trackerpro/internal/service"

	"github.com/labstack/echo/v4"
)

// @Summary     List users
// @Description Returns non-admin accounts, optionally filtered by role ("all" or absent means no filter)
// @Tags        admin
// @Produce     json
// @Param       role query string false "role filter"
// @Success     200 {object} api.Response
// @Failure     400 {object} api.Response
// @Failure     500 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /admin/users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		roleFilter := c.QueryParam("role")

		var users []model.User
		var err error
		if roleFilter != "" && !strings.EqualFold(roleFilter, "all") {
			role, perr := model.ParseRole(roleFilter)
			if perr != nil {
				return c.JSON(http.StatusBadRequest, api.Fail(perr.Error()))
			}
			users, err = usersByRole(c.Request().Context(), db, role)
		} else {
			users, err = allUsers(c.Request().Context(), db)
		}
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

// @Summary     Update a user
// @Description Rewrites profile fields; email uniqueness is re-checked, password needs its confirmation
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       user_id path int true "user ID"
// @Param       request body api.UpdateUserRequest true "updated fields"
// @Success     200 {object} api.Response
// @Failure     400 {object} api.Response
// @Failure     500 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /admin/users/{user_id} [put]
func UpdateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := userIDParam(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("invalid user ID"))
		}

		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("invalid request body"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail(err.Error()))
		}

		user, err := updateUser(c.Request().Context(), db, id, service.Update{
			FirstName:       req.FirstName,
			LastName:        optional(req.LastName),
			Email:           strings.ToLower(req.Email),
			Mobile:          optional(req.Mobile),
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
			RoleCategory:    req.RoleCategory,
		})
		if err != nil {
			return fail(c, err)
		}

		return c.JSON(http.StatusOK, api.Response{
			Success: true,
			Message: "User updated successfully!",
			User:    api.NewUserResponse(user),
		})
	}
}

// @Summary     Toggle a user's status
// @Description Flips a non-admin account between ACTIVE and INACTIVE
// @Tags        admin
// @Produce     json
// @Param       user_id path int true "user ID"
// @Success     200 {object} api.Response
// @Failure     400 {object} api.Response
// @Failure     500 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /admin/toggle-user-status/{user_id} [post]
func ToggleUserStatusHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := userIDParam(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("invalid user ID"))
		}
		if _, err := toggleUserStatus(c.Request().Context(), db, id); err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, api.Response{
			Success: true,
			Message: "User status updated successfully!",
		})
	}
}

// @Summary     Delete a user
// @Description Removes a non-admin account
// @Tags        admin
// @Produce     json
// @Param       user_id path int true "user ID"
// @Success     200 {object} api.Response
// @Failure     400 {object} api.Response
// @Failure     500 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /admin/users/{user_id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := userIDParam(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("invalid user ID"))
		}
		if err := deleteUser(c.Request().Context(), db, id); err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, api.Response{
			Success: true,
			Message: "User deleted successfully!",
		})
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
