package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"trackerpro/internal/cache"
	"trackerpro/internal/database"
	"trackerpro/internal/store"
)

const resetTokenTTL = 15 * time.Minute

var randRead = rand.Read

// RequestPasswordReset mints an opaque reset token for the account matching
// the given email or mobile number and stores it with a short TTL. Callers
// must answer generically whether or not an account matched, so the endpoint
// cannot be used to enumerate accounts.
func RequestPasswordReset(ctx context.Context, db database.DB, c cache.Cache, emailOrMobile string) error {
	user, err := getUserByEmail(ctx, db, strings.ToLower(emailOrMobile))
	if errors.Is(err, store.ErrNotFound) {
		user, err = getUserByMobile(ctx, db, emailOrMobile)
	}
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	buf := make([]byte, 32)
	if _, err := randRead(buf); err != nil {
		return err
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	key := fmt.Sprintf("password_reset:%s", token)
	if err := c.Set(ctx, key, user.ID, resetTokenTTL).Err(); err != nil {
		return err
	}
	// TODO: deliver the token by email/SMS once a sender is available.
	return nil
}
