package kafka

import (
	"context"

	"hris-portal/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Recorder writes activity events to the outbox. A nil repository makes it a
// no-op, and write failures are logged, never returned: the user action
// already succeeded upstream.
type Recorder struct {
	repo   OutboxRepository
	logger *zap.Logger
}

func NewRecorder(repo OutboxRepository, logger ...*zap.Logger) *Recorder {
	l := zap.L().Named("kafka.outbox.recorder")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.outbox.recorder")
	}
	return &Recorder{repo: repo, logger: l}
}

func (r *Recorder) Record(ctx context.Context, topic, eventType, aggregateType, aggregateID string, payload any) {
	if r == nil || r.repo == nil {
		return
	}

	log := contextutil.GetLogger(ctx, r.logger)
	event, err := NewOutboxEvent(topic, eventType, aggregateType, aggregateID, contextutil.GetRequestID(ctx), payload)
	if err != nil {
		log.Error("encode outbox event failed", zap.String("event_type", eventType), zap.Error(err))
		return
	}

	if err := r.repo.Create(ctx, event); err != nil {
		log.Error("write outbox event failed",
			zap.String("event_type", eventType),
			zap.String("aggregate_id", aggregateID),
			zap.Error(err),
		)
		return
	}

	log.Debug("outbox event recorded",
		zap.String("outbox_id", event.ID),
		zap.String("event_type", eventType),
		zap.String("topic", topic),
	)
}
