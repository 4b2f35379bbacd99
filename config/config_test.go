package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/niksmo/storefront/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := config.LoadFile("")
		require.NoError(t, err)

		assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
		assert.Equal(t, ":8080", cfg.HTTPServer.Addr)
		assert.Equal(t, "https://fakestoreapi.com", cfg.Catalog.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.Catalog.Timeout)
		assert.Equal(t, 3, cfg.Catalog.RetryAttempts)
		assert.Empty(t, cfg.Broker.SeedBrokers)
		assert.Equal(t, "cart-events", cfg.Broker.Topics.CartEvents)
		assert.False(t, cfg.Broker.TLS.Enabled())
	})

	t.Run("File", func(t *testing.T) {
		path := writeConfig(t, `
log_level: debug
http_server:
  addr: "127.0.0.1:9000"
  handler_timeout: 2s
catalog:
  base_url: "http://localhost:3000"
  retry_attempts: 5
  retry_delay: 50ms
broker:
  seed_brokers: ["kafka-1:9092", "kafka-2:9092"]
  schema_registry_urls: ["http://registry:8081"]
  topics:
    cart_events: "storefront-cart"
  tls:
    ca_file: "/certs/ca.pem"
    cert_file: "/certs/client.pem"
    key_file: "/certs/client.key"
`)
		cfg, err := config.LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
		assert.Equal(t, "127.0.0.1:9000", cfg.HTTPServer.Addr)
		assert.Equal(t, 2*time.Second, cfg.HTTPServer.HandlerTimeout)
		assert.Equal(t, 5*time.Second, cfg.HTTPServer.ReadHeaderTimeout)
		assert.Equal(t, "http://localhost:3000", cfg.Catalog.BaseURL)
		assert.Equal(t, 5, cfg.Catalog.RetryAttempts)
		assert.Equal(t, 50*time.Millisecond, cfg.Catalog.RetryDelay)
		assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Broker.SeedBrokers)
		assert.Equal(t, []string{"http://registry:8081"}, cfg.Broker.SchemaRegistryURLs)
		assert.Equal(t, "storefront-cart", cfg.Broker.Topics.CartEvents)
		assert.True(t, cfg.Broker.TLS.Enabled())
	})

	t.Run("UnknownKey", func(t *testing.T) {
		path := writeConfig(t, "sql_db: postgres://localhost\n")
		_, err := config.LoadFile(path)
		require.Error(t, err)
	})

	t.Run("BadLevel", func(t *testing.T) {
		path := writeConfig(t, "log_level: loud\n")
		_, err := config.LoadFile(path)
		require.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := config.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}
