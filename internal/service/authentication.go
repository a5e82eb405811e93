package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"trackerpro/internal/database"
	"trackerpro/internal/model"
	"trackerpro/internal/store"

	"github.com/golang-jwt/jwt/v5"
)

const invalidCredentials = BusinessError("Invalid email or password")

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// CustomClaims is the JWT payload carried by access tokens.
type CustomClaims struct {
	UserID int        `json:"user_id"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

// AuthenticateUser verifies credentials and the approval gate. Admin accounts
// skip the status check; everyone else must be ACTIVE, with a status-specific
// message otherwise.
func AuthenticateUser(ctx context.Context, db database.DB, email, password string) (*model.User, error) {
	user, err := getUserByEmail(ctx, db, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, invalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, invalidCredentials
	}

	if user.Role != model.RoleAdmin && user.Status != model.StatusActive {
		switch user.Status {
		case model.StatusPending:
			return nil, BusinessError("Your account is pending approval. Please contact administrator.")
		case model.StatusInactive:
			return nil, BusinessError("Your account has been deactivated. Please contact administrator.")
		case model.StatusRejected:
			return nil, BusinessError("Your account registration was rejected. Please contact administrator.")
		default:
			return nil, BusinessError("Account access denied.")
		}
	}

	return user, nil
}

// IssueAccessToken signs an HS256 JWT for the user with the given TTL.
func IssueAccessToken(user model.User, ttl time.Duration) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET not set")
	}

	now := timeNow()
	claims := CustomClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAccessToken parses and validates an access token.
func VerifyAccessToken(tokenString string) (*CustomClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
