package producer_test

import (
	"context"
	"errors"
	"testing"

	"hris-portal/internal/events"
	"hris-portal/internal/messaging/kafka"
	kafkaMock "hris-portal/internal/messaging/kafka/mock"
	"hris-portal/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	failFor map[string]bool
	written []kafkago.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if w.failFor[string(m.Key)] {
			return errors.New("broker unavailable")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	writer := &fakeWriter{failFor: map[string]bool{"leave-2": true}}
	ctx := context.Background()

	pending := []kafka.OutboxEvent{
		{ID: "o-1", AggregateID: "leave-1", AggregateType: "leave", EventType: events.TypeLeaveDecided, Topic: events.LeaveTopic, Payload: []byte(`{}`), RequestID: "req-9"},
		{ID: "o-2", AggregateID: "leave-2", AggregateType: "leave", EventType: events.TypeLeaveDecided, Topic: events.LeaveTopic, Payload: []byte(`{}`)},
	}

	repo.EXPECT().ListPending(ctx, 50).Return(pending, nil)
	repo.EXPECT().MarkSent(ctx, "o-1").Return(nil)
	repo.EXPECT().MarkFailed(ctx, "o-2", "broker unavailable").Return(nil)

	sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
	if assert.Len(t, writer.written, 1) {
		msg := writer.written[0]
		assert.Equal(t, events.LeaveTopic, msg.Topic)
		assert.Equal(t, "leave-1", string(msg.Key))

		headers := map[string]string{}
		for _, h := range msg.Headers {
			headers[h.Key] = string(h.Value)
		}
		assert.Equal(t, events.TypeLeaveDecided, headers["event_type"])
		assert.Equal(t, "req-9", headers["request_id"])
	}
}

func TestProcessPendingEvents_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	ctx := context.Background()

	repo.EXPECT().ListPending(ctx, 50).Return(nil, errors.New("db down"))

	sent, err := producer.ProcessPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())
	assert.EqualError(t, err, "db down")
	assert.Zero(t, sent)
}
