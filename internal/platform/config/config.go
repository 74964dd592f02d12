package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string

	// Catalog
	CatalogDir string

	// Rate providers, in priority order
	RateProviders      []string
	OpenERAPIBaseURL   string
	FrankfurterBaseURL string

	// Rate refresh policy
	RateRefreshInterval            time.Duration
	RateProviderTimeout            time.Duration
	RateRefreshTimeout             time.Duration
	RateStalenessThreshold         time.Duration
	RateSignificantChangeThreshold decimal.Decimal
	BreakerFailureThreshold        uint32
	BreakerCooldown                time.Duration

	// Messaging
	KafkaBrokers   []string
	KafkaRateTopic string

	// Preference defaults
	DefaultLocale   string
	DefaultTimezone string

	// HTTP surface
	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("CATALOG_DIR", "./catalog")
	v.SetDefault("RATE_PROVIDERS", "openerapi,frankfurter")
	v.SetDefault("OPENERAPI_BASE_URL", "https://open.er-api.com/v6")
	v.SetDefault("FRANKFURTER_BASE_URL", "https://api.frankfurter.app")
	v.SetDefault("RATE_REFRESH_INTERVAL", "1h")
	v.SetDefault("RATE_PROVIDER_TIMEOUT", "5s")
	v.SetDefault("RATE_REFRESH_TIMEOUT", "30s")
	v.SetDefault("RATE_STALENESS_THRESHOLD", "24h")
	v.SetDefault("RATE_SIGNIFICANT_CHANGE_THRESHOLD", "0.05")
	v.SetDefault("BREAKER_FAILURE_THRESHOLD", 3)
	v.SetDefault("BREAKER_COOLDOWN", "60s")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_RATE_TOPIC", "exchange-rate-changes")
	v.SetDefault("DEFAULT_LOCALE", "en-US")
	v.SetDefault("DEFAULT_TIMEZONE", "UTC")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	// Values from the environment override the defaults above
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Using in-memory repositories.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.CatalogDir = v.GetString("CATALOG_DIR")
	cfg.OpenERAPIBaseURL = strings.TrimRight(v.GetString("OPENERAPI_BASE_URL"), "/")
	cfg.FrankfurterBaseURL = strings.TrimRight(v.GetString("FRANKFURTER_BASE_URL"), "/")

	cfg.RateProviders = splitList(v.GetString("RATE_PROVIDERS"))
	if len(cfg.RateProviders) == 0 {
		cfg.RateProviders = []string{"static"}
		log.Println("Warning: RATE_PROVIDERS is empty. Falling back to the static provider.")
	}

	cfg.RateRefreshInterval = durationOrDefault(v, "RATE_REFRESH_INTERVAL", time.Hour)
	cfg.RateProviderTimeout = durationOrDefault(v, "RATE_PROVIDER_TIMEOUT", 5*time.Second)
	cfg.RateRefreshTimeout = durationOrDefault(v, "RATE_REFRESH_TIMEOUT", 30*time.Second)
	cfg.RateStalenessThreshold = durationOrDefault(v, "RATE_STALENESS_THRESHOLD", 24*time.Hour)
	cfg.BreakerCooldown = durationOrDefault(v, "BREAKER_COOLDOWN", 60*time.Second)

	thresholdStr := v.GetString("RATE_SIGNIFICANT_CHANGE_THRESHOLD")
	threshold, err := decimal.NewFromString(thresholdStr)
	if err != nil || threshold.IsNegative() {
		threshold = decimal.RequireFromString("0.05")
		log.Printf("Warning: Invalid value for RATE_SIGNIFICANT_CHANGE_THRESHOLD ('%s'). Defaulting to %s.\n", thresholdStr, threshold)
	}
	cfg.RateSignificantChangeThreshold = threshold

	failures := v.GetInt("BREAKER_FAILURE_THRESHOLD")
	if failures <= 0 {
		failures = 3
		log.Printf("Warning: Invalid value for BREAKER_FAILURE_THRESHOLD ('%s'). Defaulting to %d.\n", v.GetString("BREAKER_FAILURE_THRESHOLD"), failures)
	}
	cfg.BreakerFailureThreshold = uint32(failures)

	cfg.KafkaBrokers = splitList(v.GetString("KAFKA_BROKERS"))
	cfg.KafkaRateTopic = v.GetString("KAFKA_RATE_TOPIC")
	if len(cfg.KafkaBrokers) == 0 {
		log.Println("Warning: KAFKA_BROKERS not set. Rate change events will only be logged.")
	}

	cfg.DefaultLocale = v.GetString("DEFAULT_LOCALE")
	cfg.DefaultTimezone = v.GetString("DEFAULT_TIMEZONE")
	if _, err := time.LoadLocation(cfg.DefaultTimezone); err != nil {
		log.Printf("Warning: Invalid value for DEFAULT_TIMEZONE ('%s'). Defaulting to UTC.\n", cfg.DefaultTimezone)
		cfg.DefaultTimezone = "UTC"
	}

	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// durationOrDefault parses key as a duration, logging and falling back on bad input.
func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def)
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
