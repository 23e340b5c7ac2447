package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	JWT      JWTConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port     string
	Env      string
	SeedData bool
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

type JWTConfig struct {
	Secret            string
	Issuer            string
	Audience          string
	ExpirationMinutes int
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowCredentials bool
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:     getenv("PORT", "8080"),
			Env:      getenv("APP_ENV", "development"),
			SeedData: getenvBool("SEED_DATA", true),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:            os.Getenv("JWT_SECRET"),
			Issuer:            getenv("JWT_ISSUER", "FinanceTrackerAPI"),
			Audience:          getenv("JWT_AUDIENCE", "FinanceTrackerApp"),
			ExpirationMinutes: getenvInt("JWT_EXPIRATION_MINUTES", 60),
		},
		CORS: CORSConfig{
			AllowedOrigins:   splitList(getenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
			AllowCredentials: true,
		},
	}
}

// IsDevelopment reports whether the process runs in a development
// environment. Login cookies drop the Secure flag in that case.
func (c ServerConfig) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitList(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
