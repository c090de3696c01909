package producer

import (
	"context"
	"errors"
	"testing"

	"github.com/anzallkiyteb-cell/bey/internal/events"
	"github.com/anzallkiyteb-cell/bey/internal/messaging/kafka"
	kafkaMock "github.com/anzallkiyteb-cell/bey/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	failTopic string
	written   []kafkago.Message
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if m.Topic == f.failTopic {
			return errors.New("broker unavailable")
		}
		f.written = append(f.written, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	writer := &fakeWriter{failTopic: events.PayrollUnpaidTopic}

	pending := []kafka.OutboxEvent{
		{ID: "o-1", RequestID: "r-1", AggregateType: "attendance", AggregateID: "2024-03-10", EventType: events.EventAttendanceSyncRequested, Topic: events.AttendanceSyncRequestedTopic, Payload: []byte(`{}`)},
		{ID: "o-2", AggregateType: "payroll", AggregateID: "e-1:2024-03", EventType: events.EventPayrollUnpaid, Topic: events.PayrollUnpaidTopic, Payload: []byte(`{}`)},
	}

	repo.EXPECT().ListPending(ctx, batchSize).Return(pending, nil)
	repo.EXPECT().MarkSent(ctx, "o-1").Return(nil)
	repo.EXPECT().MarkFailed(ctx, "o-2", "broker unavailable").Return(nil)

	sent, err := processPendingEvents(ctx, repo, writer, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	require.Len(t, writer.written, 1)
	msg := writer.written[0]
	assert.Equal(t, "2024-03-10", string(msg.Key))
	assert.Contains(t, msg.Headers, kafkago.Header{Key: "request_id", Value: []byte("r-1")})
}

func TestProcessPendingEvents_ListError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	repo.EXPECT().ListPending(ctx, batchSize).Return(nil, errors.New("db down"))

	_, err := processPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())

	assert.Error(t, err)
}
