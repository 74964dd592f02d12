package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"openerapi", "frankfurter"}, cfg.RateProviders)
	assert.Equal(t, time.Hour, cfg.RateRefreshInterval)
	assert.Equal(t, 5*time.Second, cfg.RateProviderTimeout)
	assert.Equal(t, 30*time.Second, cfg.RateRefreshTimeout)
	assert.Equal(t, 24*time.Hour, cfg.RateStalenessThreshold)
	assert.Equal(t, "0.05", cfg.RateSignificantChangeThreshold.String())
	assert.Equal(t, uint32(3), cfg.BreakerFailureThreshold)
	assert.Equal(t, 60*time.Second, cfg.BreakerCooldown)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "en-US", cfg.DefaultLocale)
	assert.Equal(t, "UTC", cfg.DefaultTimezone)
}

func TestLoad_EnvOverridesAndFallbacks(t *testing.T) {
	t.Setenv("RATE_PROVIDERS", " frankfurter , static ")
	t.Setenv("RATE_REFRESH_INTERVAL", "15m")
	t.Setenv("RATE_PROVIDER_TIMEOUT", "soon")
	t.Setenv("RATE_SIGNIFICANT_CHANGE_THRESHOLD", "-1")
	t.Setenv("BREAKER_FAILURE_THRESHOLD", "5")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("DEFAULT_TIMEZONE", "Mars/Olympus")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, []string{"frankfurter", "static"}, cfg.RateProviders)
	assert.Equal(t, 15*time.Minute, cfg.RateRefreshInterval)
	assert.Equal(t, 5*time.Second, cfg.RateProviderTimeout)
	assert.Equal(t, "0.05", cfg.RateSignificantChangeThreshold.String())
	assert.Equal(t, uint32(5), cfg.BreakerFailureThreshold)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "UTC", cfg.DefaultTimezone)
}
