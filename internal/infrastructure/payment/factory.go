package payment

import (
	"fmt"
	"strings"

	"github.com/phonefix-inc/phonefix/internal/application/payment/paymentgateway"
	sharedConfig "github.com/phonefix-inc/phonefix/internal/shared/config"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

const (
	ProviderMock   = "mock"
	ProviderStripe = "stripe"
)

// NewGateway builds the configured card processor.
func NewGateway(cfg sharedConfig.PaymentConfig, log logger.Interface) (paymentgateway.PaymentGateway, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", ProviderMock:
		log.Warnw("using mock payment gateway; no real charges are made")
		return paymentgateway.NewMockGateway(), nil
	case ProviderStripe:
		if cfg.SecretKey == "" || cfg.WebhookSecret == "" {
			return nil, fmt.Errorf("stripe requires payment.secret_key and payment.webhook_secret")
		}
		return NewStripeGateway(cfg.SecretKey, cfg.WebhookSecret, log), nil
	default:
		return nil, fmt.Errorf("unsupported payment provider: %s", cfg.Provider)
	}
}
