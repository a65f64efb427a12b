package config

import (
	"database/sql"
	"log"
	"os"

	"github.com/spf13/cast"
)

type Config struct {
	Port             int
	DatabaseURL      string
	RedisAddr        string
	JWTSecret        string
	TokenExpiryHours int
	FacetCron        string
	LoginRatePerMin  int
}

func Load() *Config {
	return &Config{
		Port:             envInt("PORT", 8080),
		DatabaseURL:      env("DATABASE_URL", "postgres://medley:medley@db:5432/medley?sslmode=disable"),
		RedisAddr:        env("REDIS_ADDR", "redis:6379"),
		JWTSecret:        env("JWT_SECRET", "change-me-in-production"),
		TokenExpiryHours: envInt("TOKEN_EXPIRY_HOURS", 72),
		FacetCron:        env("FACET_CRON", "0 3 * * *"),
		LoginRatePerMin:  envInt("LOGIN_RATE_PER_MIN", 10),
	}
}

// MergeFromDB overlays operator-tunable values from the settings table.
// A missing table or row is fine; the env/default values stand.
func (c *Config) MergeFromDB(db *sql.DB) {
	rows, err := db.Query("SELECT key, value FROM system_settings")
	if err != nil {
		log.Printf("config: skipping DB merge: %v", err)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			continue
		}
		switch key {
		case "facet_cron":
			c.FacetCron = value
		case "token_expiry_hours":
			if v, err := cast.ToIntE(value); err == nil && v > 0 {
				c.TokenExpiryHours = v
			}
		case "login_rate_per_min":
			if v, err := cast.ToIntE(value); err == nil && v > 0 {
				c.LoginRatePerMin = v
			}
		}
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := cast.ToIntE(v); err == nil {
			return i
		}
	}
	return fallback
}
