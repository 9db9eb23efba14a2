package http

import (
	"context"
	"fmt"
	"io"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/phonefix-inc/phonefix/internal/application/notification"
	"github.com/phonefix-inc/phonefix/internal/application/payment/paymentgateway"
	"github.com/phonefix-inc/phonefix/internal/domain/order"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/config"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/email"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/messaging"
	infraNotification "github.com/phonefix-inc/phonefix/internal/infrastructure/notification"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/payment"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/permission"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/ratelimit"
	sharedConfig "github.com/phonefix-inc/phonefix/internal/shared/config"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
	"github.com/phonefix-inc/phonefix/internal/shared/markdown"
)

// initInfrastructure sets up the outbound services: event publisher,
// notifier, rate limiter and the casbin enforcer.
func (c *Container) initInfrastructure() error {
	c.repos = newRepositories(c.db, c.log)
	c.markdown = markdown.NewService()

	var closer io.Closer
	c.publisher, closer = messaging.NewPublisher(c.cfg.Kafka, c.log)
	c.closers = append(c.closers, closer)

	c.notifier = newNotifier(c.cfg, c.markdown, c.log)

	c.limiter = ratelimit.NoopRateLimiter{}
	if c.cfg.RateLimit.Enabled {
		if !c.cfg.Redis.Enabled {
			c.log.Warnw("rate limiting requested without redis; limits are not enforced")
		} else {
			client, err := initRedis(c.cfg, c.log)
			if err != nil {
				return err
			}
			c.redis = client
			c.limiter = ratelimit.NewRedisRateLimiter(client)
		}
	}

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := permission.InitDefaultPolicies(enforcer); err != nil {
		return fmt.Errorf("failed to seed default policies: %w", err)
	}
	c.enforcer = enforcer

	return nil
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient, nil
}

func newNotifier(cfg *config.Config, renderer markdown.Renderer, log logger.Interface) notification.Notifier {
	if !cfg.Email.Enabled {
		return infraNotification.NewNoopNotifier(log)
	}
	sender := email.NewSMTPEmailService(email.SMTPConfigFrom(cfg.Email))
	return infraNotification.NewEmailNotifier(sender, renderer, cfg.Email.StoreName, log)
}

func newGateway(cfg *config.Config, log logger.Interface) (paymentgateway.PaymentGateway, error) {
	gateway, err := payment.NewGateway(cfg.Payment, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment gateway: %w", err)
	}
	return gateway, nil
}

func newPricingPolicy(p sharedConfig.PricingConfig) order.PricingPolicy {
	return order.PricingPolicy{
		Currency:              p.Currency,
		TaxRate:               decimal.NewFromFloat(p.TaxRate),
		FlatShipping:          decimal.NewFromFloat(p.FlatShipping),
		FreeShippingThreshold: decimal.NewFromFloat(p.FreeShippingThreshold),
		WholesaleFreeShipping: p.WholesaleFreeShipping,
	}
}
