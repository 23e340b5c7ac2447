package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/backend/internal/config"
)

func testConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "FinanceTrackerAPI",
		Audience:          "FinanceTrackerApp",
		ExpirationMinutes: 60,
	}
}

func TestNewIssuerRequiresSecret(t *testing.T) {
	cfg := testConfig()
	cfg.Secret = ""
	_, err := NewIssuer(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMisconfigured)
}

func TestNewIssuerRequiresPositiveTTL(t *testing.T) {
	cfg := testConfig()
	cfg.ExpirationMinutes = 0
	_, err := NewIssuer(cfg)
	assert.ErrorIs(t, err, ErrMisconfigured)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	issuer, err := NewIssuer(testConfig())
	require.NoError(t, err)

	signed, err := issuer.AccessToken(42, "jane@example.com")
	require.NoError(t, err)

	user, err := issuer.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "jane@example.com", user.Email)
}

func TestAccessTokenClaims(t *testing.T) {
	issuer, err := NewIssuer(testConfig())
	require.NoError(t, err)

	signed, err := issuer.AccessToken(7, "john@example.com")
	require.NoError(t, err)

	claims := &accessClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, "FinanceTrackerAPI", claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{"FinanceTrackerApp"}, claims.Audience)
	assert.NotEmpty(t, claims.ID, "each token carries a fresh jti")
	require.NotNil(t, claims.ExpiresAt)
	ttl := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, ttl, 59*time.Minute)
	assert.LessOrEqual(t, ttl, 60*time.Minute)
}

func TestAccessTokenUniqueJTI(t *testing.T) {
	issuer, err := NewIssuer(testConfig())
	require.NoError(t, err)

	first, err := issuer.AccessToken(1, "a@x.com")
	require.NoError(t, err)
	second, err := issuer.AccessToken(1, "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer, err := NewIssuer(testConfig())
	require.NoError(t, err)

	other := testConfig()
	other.Secret = "other-secret"
	otherIssuer, err := NewIssuer(other)
	require.NoError(t, err)

	signed, err := otherIssuer.AccessToken(1, "a@x.com")
	require.NoError(t, err)

	_, err = issuer.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	issuer, err := NewIssuer(testConfig())
	require.NoError(t, err)

	now := time.Now()
	claims := accessClaims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = issuer.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	issuer, err := NewIssuer(testConfig())
	require.NoError(t, err)

	_, err = issuer.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokensAreUnique(t *testing.T) {
	issuer, err := NewIssuer(testConfig())
	require.NoError(t, err)

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		tok := issuer.RefreshToken()
		require.NotEmpty(t, tok)
		_, dup := seen[tok]
		require.False(t, dup)
		seen[tok] = struct{}{}
	}
}
