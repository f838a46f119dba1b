package config

import (
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers accepted in STORE_DRIVER.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port               string
	IsProduction       bool
	StoreDriver        string
	DatabaseURL        string
	EnableDBCheck      bool
	MigrationsPath     string
	JWTSecret          string // empty disables the bearer-token guard
	RateLimit          string // ulule formatted rate, e.g. "120-M"
	CORSAllowedOrigins []string
	CatalogFile        string
	LogLevel           slog.Level
}

// UsesPostgres reports whether the books live in PostgreSQL.
func (c *Config) UsesPostgres() bool {
	return c.StoreDriver == StorePostgres
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORE_DRIVER", StoreMemory)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CATALOG_FILE", "")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:           viper.GetString("PORT"),
		IsProduction:   viper.GetBool("IS_PRODUCTION"),
		StoreDriver:    strings.ToLower(strings.TrimSpace(viper.GetString("STORE_DRIVER"))),
		DatabaseURL:    viper.GetString("PGSQL_URL"),
		EnableDBCheck:  viper.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath: viper.GetString("MIGRATIONS_PATH"),
		JWTSecret:      viper.GetString("JWT_SECRET"),
		RateLimit:      viper.GetString("RATE_LIMIT"),
		CatalogFile:    viper.GetString("CATALOG_FILE"),
		LogLevel:       parseLevel(viper.GetString("LOG_LEVEL")),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StoreDriver {
	case StoreMemory, StorePostgres:
	default:
		log.Printf("Warning: unknown STORE_DRIVER %q. Defaulting to %s.\n", cfg.StoreDriver, StoreMemory)
		cfg.StoreDriver = StoreMemory
	}

	if cfg.UsesPostgres() && cfg.DatabaseURL == "" {
		log.Println("Warning: STORE_DRIVER is postgres but PGSQL_URL environment variable not set.")
	}

	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set. API routes are not protected.")
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		log.Printf("Warning: invalid LOG_LEVEL %q. Defaulting to info.\n", s)
		return slog.LevelInfo
	}
	return level
}
