package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs from the environment.
type Config struct {
	Port        string
	DBPath      string
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	// GitHub OAuth settings. Empty values disable the GitHub login routes.
	GithubClientID     string
	GithubClientSecret string
	GithubRedirectURL  string
}

// Load reads .env if present and resolves the configuration from the
// environment, applying development defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:        getEnv("PORT", "8008"),
		DBPath:      getEnv("DB_PATH", "employee-task.db"),
		JWTSecret:   getEnv("JWT_SECRET", "development-insecure-secret-change-me"),
		JWTIssuer:   getEnv("JWT_ISSUER", "employee-task-api"),
		JWTAudience: getEnv("JWT_AUDIENCE", "employee-task-clients"),

		GithubClientID:     os.Getenv("GITHUB_CLIENT_ID"),
		GithubClientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),
		GithubRedirectURL:  os.Getenv("GITHUB_REDIRECT_URL"),
	}
}

// GithubEnabled reports whether the GitHub OAuth flow is configured.
func (c Config) GithubEnabled() bool {
	return c.GithubClientID != "" && c.GithubClientSecret != "" && c.GithubRedirectURL != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
