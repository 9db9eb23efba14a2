package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (s *ServerConfig) IsDebug() bool {
	return s.Mode == "debug"
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SSLMode         string `mapstructure:"ssl_mode"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// GetDSN builds the driver-specific connection string. For sqlite the
// database field is the file path (or ":memory:").
func (d *DatabaseConfig) GetDSN() string {
	switch strings.ToLower(d.Driver) {
	case "postgres", "postgresql":
		sslMode := d.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			d.Host, d.Port, d.Username, d.Password, d.Database, sslMode)
	case "sqlite", "sqlite3":
		return d.Database
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			d.Username, d.Password, d.Host, d.Port, d.Database)
	}
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// AuthConfig selects how request identity is established. Mode "header"
// trusts x-user-id / x-user-role set by the upstream identity proxy;
// mode "jwt" verifies a bearer token.
type AuthConfig struct {
	Mode string    `mapstructure:"mode"`
	JWT  JWTConfig `mapstructure:"jwt"`
}

type EmailConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	StoreName    string `mapstructure:"store_name"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type KafkaConfig struct {
	Enabled     bool     `mapstructure:"enabled"`
	Brokers     []string `mapstructure:"brokers"`
	TopicPrefix string   `mapstructure:"topic_prefix"`
}

// PaymentConfig selects the gateway. Provider "stripe" needs SecretKey and
// WebhookSecret; provider "mock" is used in development.
type PaymentConfig struct {
	Provider      string `mapstructure:"provider"`
	SecretKey     string `mapstructure:"secret_key"`
	WebhookSecret string `mapstructure:"webhook_secret"`
}

type PricingConfig struct {
	Currency              string             `mapstructure:"currency"`
	TaxRate               float64            `mapstructure:"tax_rate"`
	FlatShipping          float64            `mapstructure:"flat_shipping"`
	FreeShippingThreshold float64            `mapstructure:"free_shipping_threshold"`
	DefaultCountry        string             `mapstructure:"default_country"`
	WholesaleDiscounts    map[string]float64 `mapstructure:"wholesale_discounts"`
	WholesaleFreeShipping bool               `mapstructure:"wholesale_free_shipping"`
}

// DiscountPercent returns the configured discount for a tier, zero when the
// tier is unknown.
func (p *PricingConfig) DiscountPercent(tier string) decimal.Decimal {
	for k, v := range p.WholesaleDiscounts {
		if strings.EqualFold(k, tier) {
			return decimal.NewFromFloat(v)
		}
	}
	return decimal.Zero
}

type RateLimitConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	IntakePerHour int  `mapstructure:"intake_per_hour"`
	CheckoutPerHr int  `mapstructure:"checkout_per_hour"`
}
