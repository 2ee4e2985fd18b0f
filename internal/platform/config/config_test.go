package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults carry the contract constants", func(t *testing.T) {
		t.Setenv("PROVIDER_FAKE", "true")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 70, cfg.Policy.BlockThreshold)
		assert.Equal(t, 80, cfg.Policy.ApproveThreshold)
		assert.Equal(t, 2, cfg.Policy.MinReferences)
		assert.Equal(t, 2, cfg.Policy.MinPartners)
		assert.Equal(t, 10, cfg.Policy.MaxPartners)
		assert.Equal(t, 45*time.Second, cfg.Provider.Timeout)
		assert.Equal(t, 5, cfg.Provider.BreakerFailures)
		assert.Equal(t, 30*time.Second, cfg.Provider.BreakerCooldown)
		assert.Equal(t, ":8080", cfg.Server.Addr)
	})

	t.Run("environment overrides thresholds", func(t *testing.T) {
		t.Setenv("PROVIDER_FAKE", "true")
		t.Setenv("POLICY_BLOCK_THRESHOLD", "65")
		t.Setenv("POLICY_APPROVE_THRESHOLD", "85")
		t.Setenv("KAFKA_BROKERS", "broker-1:9092, broker-2:9092")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 65, cfg.Policy.BlockThreshold)
		assert.Equal(t, 85, cfg.Policy.ApproveThreshold)
		assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.Kafka.Brokers)
	})

	t.Run("rejects inverted thresholds", func(t *testing.T) {
		t.Setenv("PROVIDER_FAKE", "true")
		t.Setenv("POLICY_BLOCK_THRESHOLD", "90")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("requires a provider unless fake", func(t *testing.T) {
		t.Setenv("PROVIDER_FAKE", "false")
		t.Setenv("PROVIDER_BASE_URL", "")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("production refuses the dev signing key", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("PROVIDER_BASE_URL", "https://kyc.example.com")

		_, err := Load()
		require.Error(t, err)
	})
}
