package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientConfigs(t *testing.T) {
	t.Setenv("WALLPAPER_DB_PASSWORD", "s3cret")

	cfg, err := Load("testdata/valid_config.yaml")
	require.NoError(t, err)

	t.Run("logger", func(t *testing.T) {
		lc := cfg.Logging.LoggerConfig()
		assert.Equal(t, "debug", lc.Level)
		assert.Equal(t, "console", lc.Format)
		assert.Equal(t, time.RFC3339, lc.TimeFormat)
	})

	t.Run("database", func(t *testing.T) {
		dc := cfg.Database.ClientConfig()
		assert.Equal(t, "postgres", dc.Driver)
		assert.Equal(t, "s3cret", dc.Password)
		assert.Equal(t, 20, dc.MaxOpenConns)
		assert.Equal(t, 5*time.Minute, dc.ConnMaxIdleTime)
	})

	t.Run("consumer declares the queue", func(t *testing.T) {
		rc := cfg.RabbitMQ.ConsumerClientConfig()
		assert.Equal(t, "generations_exchange", rc.ExchangeName)
		assert.Equal(t, "wallpaper_ingest", rc.QueueName)
		assert.True(t, rc.QueueDurable)
		assert.Equal(t, "generation.completed", rc.RoutingKey)
		assert.Zero(t, rc.PublishRetries)
	})

	t.Run("publisher skips the queue", func(t *testing.T) {
		rc := cfg.RabbitMQ.PublisherClientConfig()
		assert.Empty(t, rc.QueueName)
		assert.Equal(t, 3, rc.PublishRetries)
		assert.Equal(t, 100*time.Millisecond, rc.PublishRetryDelay)
		assert.Equal(t, 2.0, rc.PublishBackoffMult)
		assert.Equal(t, 30*time.Second, rc.ConnectionTimeout)
	})
}
