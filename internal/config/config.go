package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database (MySQL DSN, go-sql-driver format)
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis
	RedisURL string `mapstructure:"REDIS_URL"`

	// Auth
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`

	// CORS
	CORSOrigin string `mapstructure:"CORS_ORIGIN"`

	// Attendance rules
	// SchoolStart is the school-level check-in reference time, "HH:MM" local.
	SchoolStart      string `mapstructure:"SCHOOL_START"`
	LateGraceMinutes int    `mapstructure:"LATE_GRACE_MINUTES"`

	// Rate limiting (fixed window, per IP, ahead of all routes)
	RateLimit         int `mapstructure:"RATE_LIMIT"`
	RateWindowMinutes int `mapstructure:"RATE_WINDOW_MINUTES"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 5000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATABASE_URL", "candiqr:candiqr@tcp(localhost:3306)/candiqr?parseTime=true&loc=Local")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 72)
	viper.SetDefault("CORS_ORIGIN", "http://localhost:3000")
	viper.SetDefault("SCHOOL_START", "07:00")
	viper.SetDefault("LATE_GRACE_MINUTES", 15)
	viper.SetDefault("RATE_LIMIT", 100)
	viper.SetDefault("RATE_WINDOW_MINUTES", 15)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
