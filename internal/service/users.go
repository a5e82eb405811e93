package service

import (
	"context"
	"errors"

	"trackerpro/internal/database"
	"trackerpro/internal/model"
	"trackerpro/internal/store"
)

// Store and hasher calls go through package vars so tests can stub them.
var (
	hashPassword           = HashPassword
	getUserByID            = store.GetUserByID
	getUserByEmail         = store.GetUserByEmail
	getUserByMobile        = store.GetUserByMobile
	userEmailExists        = store.UserEmailExists
	userMobileExists       = store.UserMobileExists
	listPendingUsers       = store.ListPendingUsers
	listNonAdminUsers      = store.ListNonAdminUsers
	listUsersByRole        = store.ListUsersByRole
	countPendingUsers      = store.CountPendingUsers
	countActiveUsersByRole = store.CountActiveUsersByRole
	createUser             = store.CreateUser
	updateUser             = store.UpdateUser
	setUserStatus          = store.SetUserStatus
	toggleUserStatus       = store.ToggleUserStatus
	deleteUser             = store.DeleteUser
)

// Registration carries the fields of a registration request.
type Registration struct {
	FirstName       string
	LastName        *string
	Email           string
	Password        string
	ConfirmPassword string
	Mobile          *string
	RoleCategory    string
}

// Update carries an admin-side user update. Password and RoleCategory are
// applied only when non-empty.
type Update struct {
	FirstName       string
	LastName        *string
	Email           string
	Mobile          *string
	Password        string
	ConfirmPassword string
	RoleCategory    string
}

func mapDuplicate(err error) error {
	switch {
	case errors.Is(err, store.ErrDuplicateEmail):
		return BusinessError("Email already exists")
	case errors.Is(err, store.ErrDuplicateMobile):
		return BusinessError("Mobile number already exists")
	}
	return err
}

// RegisterUser creates a PENDING account. The existence pre-checks give exact
// messages; the unique constraints behind CreateUser close the race against a
// concurrent registration with the same email or mobile.
func RegisterUser(ctx context.Context, db database.DB, in Registration) (*model.User, error) {
	if in.Password != in.ConfirmPassword {
		return nil, BusinessError("Passwords do not match")
	}

	role, err := model.ParseRole(in.RoleCategory)
	if err != nil {
		return nil, BusinessError(err.Error())
	}

	exists, err := userEmailExists(ctx, db, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, BusinessError("Email already exists")
	}

	if in.Mobile != nil {
		exists, err := userMobileExists(ctx, db, *in.Mobile)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, BusinessError("Mobile number already exists")
		}
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user, err := createUser(ctx, db, &model.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		Mobile:       in.Mobile,
		Role:         role,
		Status:       model.StatusPending,
	})
	if err != nil {
		return nil, mapDuplicate(err)
	}
	return user, nil
}

// PendingRegistrations returns PENDING accounts, newest first.
func PendingRegistrations(ctx context.Context, db database.DB) ([]model.User, error) {
	return listPendingUsers(ctx, db)
}

// ApproveUser moves a PENDING account to ACTIVE. The transition is a single
// conditional write; when it matches nothing the account is re-read to tell
// "not found" apart from "not pending".
func ApproveUser(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	user, err := setUserStatus(ctx, db, userID, model.StatusPending, model.StatusActive)
	if errors.Is(err, store.ErrNotFound) {
		if _, gerr := getUserByID(ctx, db, userID); gerr != nil {
			if errors.Is(gerr, store.ErrNotFound) {
				return nil, BusinessError("User not found")
			}
			return nil, gerr
		}
		return nil, BusinessError("Only pending users can be approved")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// RejectUser moves a PENDING account to REJECTED, which is terminal.
func RejectUser(ctx context.Context, db database.DB, userID int) error {
	_, err := setUserStatus(ctx, db, userID, model.StatusPending, model.StatusRejected)
	if errors.Is(err, store.ErrNotFound) {
		if _, gerr := getUserByID(ctx, db, userID); gerr != nil {
			if errors.Is(gerr, store.ErrNotFound) {
				return BusinessError("User not found")
			}
			return gerr
		}
		return BusinessError("Only pending users can be rejected")
	}
	return err
}

// AllUsers returns every non-admin account, newest first.
func AllUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	return listNonAdminUsers(ctx, db)
}

// UsersByRole returns accounts with exactly that role, any status.
func UsersByRole(ctx context.Context, db database.DB, role model.Role) ([]model.User, error) {
	return listUsersByRole(ctx, db, role)
}

// UpdateUser applies an admin-side field update.
func UpdateUser(ctx context.Context, db database.DB, userID int, in Update) (*model.User, error) {
	user, err := getUserByID(ctx, db, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, BusinessError("User not found")
	}
	if err != nil {
		return nil, err
	}

	if user.Email != in.Email {
		exists, err := userEmailExists(ctx, db, in.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, BusinessError("Email already exists")
		}
	}

	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.Email = in.Email
	user.Mobile = in.Mobile

	if in.RoleCategory != "" {
		role, err := model.ParseRole(in.RoleCategory)
		if err != nil {
			return nil, BusinessError(err.Error())
		}
		user.Role = role
	}

	if in.Password != "" {
		if in.Password != in.ConfirmPassword {
			return nil, BusinessError("Passwords do not match")
		}
		hash, err := hashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := updateUser(ctx, db, user); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, BusinessError("User not found")
		}
		return nil, mapDuplicate(err)
	}
	return user, nil
}

// DeleteUser removes a non-admin account.
func DeleteUser(ctx context.Context, db database.DB, userID int) error {
	user, err := getUserByID(ctx, db, userID)
	if errors.Is(err, store.ErrNotFound) {
		return BusinessError("User not found")
	}
	if err != nil {
		return err
	}
	if user.Role == model.RoleAdmin {
		return BusinessError("Cannot delete admin user")
	}

	if err := deleteUser(ctx, db, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return BusinessError("User not found")
		}
		return err
	}
	return nil
}

// ToggleUserStatus flips a non-admin account between ACTIVE and INACTIVE.
func ToggleUserStatus(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	user, err := getUserByID(ctx, db, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, BusinessError("User not found")
	}
	if err != nil {
		return nil, err
	}
	if user.Role == model.RoleAdmin {
		return nil, BusinessError("Cannot modify admin user status")
	}

	toggled, err := toggleUserStatus(ctx, db, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, BusinessError("User not found")
	}
	if err != nil {
		return nil, err
	}
	return toggled, nil
}

// PendingCount returns the number of PENDING accounts.
func PendingCount(ctx context.Context, db database.DB) (int, error) {
	return countPendingUsers(ctx, db)
}

// ActiveCountByRole returns the number of ACTIVE accounts with that role.
func ActiveCountByRole(ctx context.Context, db database.DB, role model.Role) (int, error) {
	return countActiveUsersByRole(ctx, db, role)
}
