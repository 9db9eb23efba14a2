package messaging

import (
	"io"

	"github.com/phonefix-inc/phonefix/internal/domain/shared/events"
	sharedConfig "github.com/phonefix-inc/phonefix/internal/shared/config"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewPublisher returns the async publisher the use cases share plus a closer
// for the underlying producer. A kafka connection failure falls back to the
// log publisher so the API still starts.
func NewPublisher(cfg sharedConfig.KafkaConfig, log logger.Interface) (events.Publisher, io.Closer) {
	if !cfg.Enabled {
		return NewLogPublisher(log), nopCloser{}
	}

	kafka, err := NewKafkaPublisher(cfg, log)
	if err != nil {
		log.Warnw("kafka unavailable, domain events will only be logged", "brokers", cfg.Brokers, "error", err)
		return NewLogPublisher(log), nopCloser{}
	}

	log.Infow("kafka event publisher initialized", "brokers", cfg.Brokers, "topic_prefix", kafka.topicPrefix)
	return NewAsyncPublisher(kafka, log), kafka
}
