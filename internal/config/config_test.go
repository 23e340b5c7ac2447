package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "APP_ENV", "SEED_DATA",
		"JWT_ISSUER", "JWT_AUDIENCE", "JWT_EXPIRATION_MINUTES",
		"CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.True(t, cfg.Server.SeedData)
	assert.Equal(t, "FinanceTrackerAPI", cfg.JWT.Issuer)
	assert.Equal(t, "FinanceTrackerApp", cfg.JWT.Audience)
	assert.Equal(t, 60, cfg.JWT.ExpirationMinutes)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.CORS.AllowCredentials)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SEED_DATA", "false")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRATION_MINUTES", "15")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example.com, http://b.example.com ,")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.False(t, cfg.Server.SeedData)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 15, cfg.JWT.ExpirationMinutes)
	assert.Equal(t, []string{"http://a.example.com", "http://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoadMalformedIntFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_MINUTES", "sixty")
	cfg := Load()
	assert.Equal(t, 60, cfg.JWT.ExpirationMinutes)
}

func TestIsDevelopment(t *testing.T) {
	assert.True(t, ServerConfig{Env: "development"}.IsDevelopment())
	assert.True(t, ServerConfig{Env: "Development"}.IsDevelopment())
	assert.False(t, ServerConfig{Env: "production"}.IsDevelopment())
}
