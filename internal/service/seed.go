package service

import (
	"context"
	"errors"
	"log"

	"trackerpro/internal/database"
	"trackerpro/internal/model"
	"trackerpro/internal/store"
)

// EnsureAdminUser seeds the bootstrap admin account, idempotently by email.
// The account is created ACTIVE so it never hits the approval gate.
func EnsureAdminUser(ctx context.Context, db database.DB, email, password string) error {
	exists, err := userEmailExists(ctx, db, email)
	if err != nil {
		return err
	}
	if exists {
		log.Printf("admin user %s already exists", email)
		return nil
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}

	lastName := "User"
	mobile := "9999999999"
	_, err = createUser(ctx, db, &model.User{
		FirstName:    "Admin",
		LastName:     &lastName,
		Email:        email,
		PasswordHash: hash,
		Mobile:       &mobile,
		Role:         model.RoleAdmin,
		Status:       model.StatusActive,
	})
	if errors.Is(err, store.ErrDuplicateEmail) {
		// Another instance seeded it first.
		return nil
	}
	if err != nil {
		return err
	}
	log.Printf("admin user %s created", email)
	return nil
}
