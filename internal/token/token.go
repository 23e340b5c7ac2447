// Package token issues and verifies the credentials returned by login:
// a short-lived HS256-signed access token and an opaque refresh token.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/finance-tracker/backend/internal/config"
	"github.com/finance-tracker/backend/internal/model"
)

var (
	ErrMisconfigured = errors.New("token config invalid")
	ErrInvalidToken  = errors.New("invalid token")
)

type Issuer struct {
	secret    []byte
	issuer    string
	audience  string
	accessTTL time.Duration
}

type accessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewIssuer builds an Issuer from startup configuration. A missing signing
// secret is a fatal startup error, not a per-request one.
func NewIssuer(cfg config.JWTConfig) (*Issuer, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET is required", ErrMisconfigured)
	}
	if cfg.ExpirationMinutes <= 0 {
		return nil, fmt.Errorf("%w: JWT_EXPIRATION_MINUTES must be positive", ErrMisconfigured)
	}

	return &Issuer{
		secret:    []byte(cfg.Secret),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
		accessTTL: time.Duration(cfg.ExpirationMinutes) * time.Minute,
	}, nil
}

// AccessToken signs a token carrying the user id, email and a fresh jti.
func (i *Issuer) AccessToken(userID int64, email string) (string, error) {
	now := time.Now()
	claims := accessClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.audience},
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.accessTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// RefreshToken returns a fresh opaque identifier. It carries no claims;
// its lifetime is enforced at the cookie layer.
func (i *Issuer) RefreshToken() string {
	return uuid.NewString()
}

// Parse verifies signature, method and expiry and returns the embedded
// user identity.
func (i *Issuer) Parse(tokenStr string) (*model.AuthUser, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &model.AuthUser{
		ID:    userID,
		Email: claims.Email,
	}, nil
}
