package config

import (
	"time"

	"github.com/cuongbtq/wallpaper-gallery/shared/database"
	"github.com/cuongbtq/wallpaper-gallery/shared/logger"
	"github.com/cuongbtq/wallpaper-gallery/shared/rabbitmq"
)

// LoggerConfig maps the logging section onto logger.Config
func (c *LoggingConfig) LoggerConfig() *logger.Config {
	return &logger.Config{
		Level:        c.Level,
		Format:       c.Format,
		Output:       c.Output,
		EnableSource: c.EnableCaller,
		TimeFormat:   time.RFC3339,
	}
}

// ClientConfig maps the database section onto database.Config
func (c *DatabaseConfig) ClientConfig() *database.Config {
	return &database.Config{
		Driver:          c.Driver,
		Host:            c.Host,
		Port:            c.Port,
		User:            c.User,
		Password:        c.Password,
		Database:        c.Database,
		SSLMode:         c.SSLMode,
		Path:            c.Path,
		MaxOpenConns:    c.MaxOpenConns,
		MaxIdleConns:    c.MaxIdleConns,
		ConnMaxLifetime: c.ConnMaxLifetime,
		ConnMaxIdleTime: c.ConnMaxIdleTime,
		AutoMigrate:     c.AutoMigrate,
	}
}

// ConsumerClientConfig maps the rabbitmq section for the ingest worker,
// which declares and binds the queue
func (c *RabbitMQConfig) ConsumerClientConfig() *rabbitmq.Config {
	cfg := c.baseClientConfig()
	cfg.QueueName = c.Queue.Name
	cfg.QueueDurable = c.Queue.Durable
	cfg.QueueAutoDelete = c.Queue.AutoDelete
	cfg.QueueExclusive = c.Queue.Exclusive
	return cfg
}

// PublisherClientConfig maps the rabbitmq section for publishers, which
// only need the exchange and the retry policy
func (c *RabbitMQConfig) PublisherClientConfig() *rabbitmq.Config {
	cfg := c.baseClientConfig()
	cfg.PublishRetries = c.Publish.RetryAttempts
	cfg.PublishRetryDelay = c.Publish.RetryInterval
	cfg.PublishBackoffMult = c.Publish.BackoffMultiplier
	return cfg
}

func (c *RabbitMQConfig) baseClientConfig() *rabbitmq.Config {
	return &rabbitmq.Config{
		Host:               c.Host,
		Port:               c.Port,
		User:               c.User,
		Password:           c.Password,
		VHost:              c.VHost,
		ExchangeName:       c.Exchange.Name,
		ExchangeType:       c.Exchange.Type,
		ExchangeDurable:    c.Exchange.Durable,
		ExchangeAutoDelete: c.Exchange.AutoDelete,
		RoutingKey:         c.RoutingKey,
		RetryAttempts:      c.Connection.RetryAttempts,
		RetryInterval:      c.Connection.RetryInterval,
		Heartbeat:          c.Connection.Heartbeat,
		ConnectionTimeout:  c.Connection.ConnectionTimeout,
	}
}
