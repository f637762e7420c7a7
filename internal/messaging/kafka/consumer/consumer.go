package consumer

import (
	"context"
	"encoding/json"

	"hris-portal/internal/events"
	"hris-portal/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeLeaveDecisions turns leave.decided events into inbox notifications.
// Other event types on the leave topic are committed and skipped.
func ConsumeLeaveDecisions(
	ctx context.Context,
	reader MessageReader,
	notifications notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_decisions")
	log.Info("leave decision consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave decision consumer stopped")
				return
			}
			log.Error("fetch leave message failed", zap.Error(err))
			continue
		}

		if eventType(msg) != events.TypeLeaveDecided {
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		var event events.LeaveDecidedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode leave_decided event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := notifications.NotifyLeaveDecided(ctx, event); err != nil {
			// not committed, redelivered after rebalance
			log.Error("notify leave decision failed",
				zap.String("leave_id", event.LeaveID),
				zap.String("employee_email", event.EmployeeEmail),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave message failed", zap.Error(err))
			continue
		}

		log.Info("leave decision notified",
			zap.String("leave_id", event.LeaveID),
			zap.String("status", event.Status),
		)
	}
}

func eventType(msg kafkago.Message) string {
	for _, h := range msg.Headers {
		if h.Key == "event_type" {
			return string(h.Value)
		}
	}
	// payload fallback for producers that don't set headers
	var probe struct {
		EventType string `json:"event_type"`
	}
	_ = json.Unmarshal(msg.Value, &probe)
	return probe.EventType
}
