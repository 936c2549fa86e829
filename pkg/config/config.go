package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	RedisURL           string
	Port               string
	IsProduction       bool
	RunMigrations      bool
	JWTSecret          string
	JWTExpiry          time.Duration
	OTPTTL             time.Duration
	AuditRetentionDays int
	AuthRateLimit      string
}

// LoadConfig loads configuration from environment variables. A .env file is
// honored when present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("JWT_EXPIRY_DURATION", "24h")
	v.SetDefault("OTP_TTL", "5m")
	v.SetDefault("AUDIT_RETENTION_DAYS", 2555)
	v.SetDefault("AUTH_RATE_LIMIT", "10-M")

	dbURL := v.GetString("PGSQL_URL")
	if dbURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	redisURL := v.GetString("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL environment variable is required (backs OTP sign-in)")
	}

	jwtSecret := v.GetString("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	jwtExpiry, err := time.ParseDuration(v.GetString("JWT_EXPIRY_DURATION"))
	if err != nil {
		log.Printf("Warning: Invalid JWT_EXPIRY_DURATION (%q). Defaulting to 24h.\n", v.GetString("JWT_EXPIRY_DURATION"))
		jwtExpiry = 24 * time.Hour
	}

	otpTTL, err := time.ParseDuration(v.GetString("OTP_TTL"))
	if err != nil {
		log.Printf("Warning: Invalid OTP_TTL (%q). Defaulting to 5m.\n", v.GetString("OTP_TTL"))
		otpTTL = 5 * time.Minute
	}

	return &Config{
		DatabaseURL:        dbURL,
		RedisURL:           redisURL,
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		RunMigrations:      v.GetBool("RUN_MIGRATIONS"),
		JWTSecret:          jwtSecret,
		JWTExpiry:          jwtExpiry,
		OTPTTL:             otpTTL,
		AuditRetentionDays: v.GetInt("AUDIT_RETENTION_DAYS"),
		AuthRateLimit:      v.GetString("AUTH_RATE_LIMIT"),
	}, nil
}
