package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "github.com/phonefix-inc/phonefix/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Auth      sharedConfig.AuthConfig      `mapstructure:"auth"`
	Email     sharedConfig.EmailConfig     `mapstructure:"email"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	Kafka     sharedConfig.KafkaConfig     `mapstructure:"kafka"`
	Payment   sharedConfig.PaymentConfig   `mapstructure:"payment"`
	Pricing   sharedConfig.PricingConfig   `mapstructure:"pricing"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"rate_limit"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml, then environment variables prefixed with
// PHONEFIX_ (PHONEFIX_DATABASE_HOST overrides database.host). A .env file in
// the working directory is loaded first when present.
func Load(env string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	v.SetEnvPrefix("PHONEFIX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the last loaded configuration.
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Payment.Provider) {
	case "mock":
	case "stripe":
		if c.Payment.SecretKey == "" || c.Payment.WebhookSecret == "" {
			return fmt.Errorf("payment.secret_key and payment.webhook_secret are required for stripe")
		}
	default:
		return fmt.Errorf("unsupported payment provider: %s", c.Payment.Provider)
	}

	switch strings.ToLower(c.Auth.Mode) {
	case "header":
	case "jwt":
		if c.Auth.JWT.Secret == "" {
			return fmt.Errorf("auth.jwt.secret is required when auth.mode is jwt")
		}
	default:
		return fmt.Errorf("unsupported auth mode: %s", c.Auth.Mode)
	}

	if c.Pricing.TaxRate < 0 || c.Pricing.FlatShipping < 0 || c.Pricing.FreeShippingThreshold < 0 {
		return fmt.Errorf("pricing values cannot be negative")
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers is required when kafka is enabled")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "phonefix_dev")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("auth.mode", "header")
	v.SetDefault("auth.jwt.issuer", "phonefix")

	v.SetDefault("email.enabled", false)
	v.SetDefault("email.smtp_host", "localhost")
	v.SetDefault("email.smtp_port", 1025)
	v.SetDefault("email.from_address", "noreply@phonefix.local")
	v.SetDefault("email.from_name", "PhoneFix")
	v.SetDefault("email.store_name", "PhoneFix")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.topic_prefix", "phonefix")

	v.SetDefault("payment.provider", "mock")

	v.SetDefault("pricing.currency", "usd")
	v.SetDefault("pricing.tax_rate", 0.0825)
	v.SetDefault("pricing.flat_shipping", 9.99)
	v.SetDefault("pricing.free_shipping_threshold", 100)
	v.SetDefault("pricing.default_country", "US")
	v.SetDefault("pricing.wholesale_discounts", map[string]float64{"TIER1": 10, "TIER2": 15, "TIER3": 20})
	v.SetDefault("pricing.wholesale_free_shipping", true)

	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.intake_per_hour", 20)
	v.SetDefault("rate_limit.checkout_per_hour", 30)
}
