package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"STOREFRONT_APP_NAME":        os.Getenv("STOREFRONT_APP_NAME"),
		"STOREFRONT_APP_ENV":         os.Getenv("STOREFRONT_APP_ENV"),
		"STOREFRONT_APP_PORT":        os.Getenv("STOREFRONT_APP_PORT"),
		"STOREFRONT_REMOTE_BASE_URL": os.Getenv("STOREFRONT_REMOTE_BASE_URL"),
		"STOREFRONT_REDIS_HOST":      os.Getenv("STOREFRONT_REDIS_HOST"),
		"STOREFRONT_REDIS_PORT":      os.Getenv("STOREFRONT_REDIS_PORT"),
		"STOREFRONT_JWT_SECRET":      os.Getenv("STOREFRONT_JWT_SECRET"),
		"STOREFRONT_HANDOFF_TTL":     os.Getenv("STOREFRONT_HANDOFF_TTL"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "cartsync", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, 15, cfg.Remote.TimeoutSeconds)
		assert.Equal(t, "localhost", cfg.Redis.Host)
		assert.Equal(t, 6379, cfg.Redis.Port)
		assert.Equal(t, "storefront", cfg.JWT.Issuer)
		assert.Equal(t, 24*time.Hour, cfg.Handoff.TTL)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	})

	t.Run("loads values from environment variables with STOREFRONT prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("STOREFRONT_APP_NAME", "test-app")
		os.Setenv("STOREFRONT_APP_PORT", "9000")
		os.Setenv("STOREFRONT_REMOTE_BASE_URL", "https://shop.example.com/api")
		os.Setenv("STOREFRONT_REDIS_HOST", "cache.local")
		os.Setenv("STOREFRONT_HANDOFF_TTL", "2h")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "https://shop.example.com/api", cfg.Remote.BaseURL)
		assert.Equal(t, "cache.local", cfg.Redis.Host)
		assert.Equal(t, 2*time.Hour, cfg.Handoff.TTL)
	})

	t.Run("production requires jwt secret", func(t *testing.T) {
		clearEnv()
		os.Setenv("STOREFRONT_APP_ENV", "production")
		os.Setenv("STOREFRONT_REMOTE_BASE_URL", "https://shop.example.com/api")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")
	})

	t.Run("production rejects short jwt secret", func(t *testing.T) {
		clearEnv()
		os.Setenv("STOREFRONT_APP_ENV", "production")
		os.Setenv("STOREFRONT_REMOTE_BASE_URL", "https://shop.example.com/api")
		os.Setenv("STOREFRONT_JWT_SECRET", "too-short")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "32 characters")
	})

	t.Run("production requires remote base url", func(t *testing.T) {
		clearEnv()
		os.Setenv("STOREFRONT_APP_ENV", "production")
		os.Setenv("STOREFRONT_JWT_SECRET", "0123456789abcdef0123456789abcdef")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "remote.base_url")
	})

	t.Run("production rejects plain http remote", func(t *testing.T) {
		clearEnv()
		os.Setenv("STOREFRONT_APP_ENV", "production")
		os.Setenv("STOREFRONT_JWT_SECRET", "0123456789abcdef0123456789abcdef")
		os.Setenv("STOREFRONT_REMOTE_BASE_URL", "http://shop.example.com/api")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "https")
	})

	t.Run("valid production config", func(t *testing.T) {
		clearEnv()
		os.Setenv("STOREFRONT_APP_ENV", "production")
		os.Setenv("STOREFRONT_JWT_SECRET", "0123456789abcdef0123456789abcdef")
		os.Setenv("STOREFRONT_REMOTE_BASE_URL", "https://shop.example.com/api")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}
