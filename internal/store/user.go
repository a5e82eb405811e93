package store

import (
	"context"
	"errors"
	"fmt"

	"trackerpro/internal/database"
	"trackerpro/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors surfaced by the store. Uniqueness is enforced by the
// users_email_key / users_mobile_key constraints so concurrent inserts cannot
// race past an application-level existence check.
var (
	ErrNotFound        = errors.New("user not found")
	ErrDuplicateEmail  = errors.New("duplicate email")
	ErrDuplicateMobile = errors.New("duplicate mobile")
)

const userColumns = `id, first_name, last_name, email, password_hash, mobile, role, status, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.PasswordHash,
		&u.Mobile,
		&u.Role,
		&u.Status,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

func collectUsers(rows pgx.Rows) ([]model.User, error) {
	defer rows.Close()
	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func mapConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "users_email_key":
			return ErrDuplicateEmail
		case "users_mobile_key":
			return ErrDuplicateMobile
		}
	}
	return err
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		userID,
	)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("GetUserByID: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("GetUserByEmail: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

func GetUserByMobile(ctx context.Context, db database.DB, mobile string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE mobile = $1`,
		mobile,
	)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("GetUserByMobile: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("GetUserByMobile: %w", err)
	}
	return u, nil
}

func UserEmailExists(ctx context.Context, db database.DB, email string) (bool, error) {
	var exists bool
	row := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`,
		email,
	)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("UserEmailExists: %w", err)
	}
	return exists, nil
}

func UserMobileExists(ctx context.Context, db database.DB, mobile string) (bool, error) {
	var exists bool
	row := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE mobile = $1)`,
		mobile,
	)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("UserMobileExists: %w", err)
	}
	return exists, nil
}

// ListPendingUsers returns PENDING registrations, newest first.
func ListPendingUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE status = $1 ORDER BY created_at DESC`,
		model.StatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("ListPendingUsers: %w", err)
	}
	users, err := collectUsers(rows)
	if err != nil {
		return nil, fmt.Errorf("ListPendingUsers: %w", err)
	}
	return users, nil
}

// ListNonAdminUsers returns every account except admins, newest first.
func ListNonAdminUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE role <> $1 ORDER BY created_at DESC`,
		model.RoleAdmin,
	)
	if err != nil {
		return nil, fmt.Errorf("ListNonAdminUsers: %w", err)
	}
	users, err := collectUsers(rows)
	if err != nil {
		return nil, fmt.Errorf("ListNonAdminUsers: %w", err)
	}
	return users, nil
}

func ListUsersByRole(ctx context.Context, db database.DB, role model.Role) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE role = $1 ORDER BY created_at DESC`,
		role,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsersByRole: %w", err)
	}
	users, err := collectUsers(rows)
	if err != nil {
		return nil, fmt.Errorf("ListUsersByRole: %w", err)
	}
	return users, nil
}

func CountPendingUsers(ctx context.Context, db database.DB) (int, error) {
	var n int
	row := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE status = $1`,
		model.StatusPending,
	)
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("CountPendingUsers: %w", err)
	}
	return n, nil
}

func CountActiveUsersByRole(ctx context.Context, db database.DB, role model.Role) (int, error) {
	var n int
	row := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role = $1 AND status = $2`,
		role, model.StatusActive,
	)
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("CountActiveUsersByRole: %w", err)
	}
	return n, nil
}

// CreateUser inserts u; id and both timestamps are assigned by the database.
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (first_name, last_name, email, password_hash, mobile, role, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		u.FirstName,
		u.LastName,
		u.Email,
		u.PasswordHash,
		u.Mobile,
		u.Role,
		u.Status,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", mapConstraint(err))
	}
	return u, nil
}

// UpdateUser rewrites every mutable field and refreshes updated_at.
func UpdateUser(ctx context.Context, db database.DB, u *model.User) error {
	row := db.QueryRow(ctx,
		`UPDATE users
		 SET first_name = $1, last_name = $2, email = $3, password_hash = $4,
		     mobile = $5, role = $6, updated_at = now()
		 WHERE id = $7
		 RETURNING updated_at`,
		u.FirstName,
		u.LastName,
		u.Email,
		u.PasswordHash,
		u.Mobile,
		u.Role,
		u.ID,
	)
	if err := row.Scan(&u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("UpdateUser: %w", ErrNotFound)
		}
		return fmt.Errorf("UpdateUser: %w", mapConstraint(err))
	}
	return nil
}

// SetUserStatus transitions id from one status to another as a single
// conditional write. Two concurrent approvals cannot both observe PENDING:
// the second sees zero rows and gets ErrNotFound.
func SetUserStatus(ctx context.Context, db database.DB, userID int, from, to model.Status) (*model.User, error) {
	row := db.QueryRow(ctx,
		`UPDATE users SET status = $1, updated_at = now()
		 WHERE id = $2 AND status = $3
		 RETURNING `+userColumns,
		to, userID, from,
	)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("SetUserStatus: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("SetUserStatus: %w", err)
	}
	return u, nil
}

// ToggleUserStatus flips ACTIVE to INACTIVE (anything else to ACTIVE) in one
// conditional write; admin accounts are never matched.
func ToggleUserStatus(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`UPDATE users
		 SET status = CASE WHEN status = $1 THEN $2 ELSE $1 END, updated_at = now()
		 WHERE id = $3 AND role <> $4
		 RETURNING `+userColumns,
		model.StatusActive, model.StatusInactive, userID, model.RoleAdmin,
	)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("ToggleUserStatus: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("ToggleUserStatus: %w", err)
	}
	return u, nil
}

// DeleteUser removes a non-admin account.
func DeleteUser(ctx context.Context, db database.DB, userID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM users WHERE id = $1 AND role <> $2`,
		userID, model.RoleAdmin,
	)
	if err != nil {
		return fmt.Errorf("DeleteUser: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteUser: %w", ErrNotFound)
	}
	return nil
}
