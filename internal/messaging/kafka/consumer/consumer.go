package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/anzallkiyteb-cell/bey/internal/attendance"
	"github.com/anzallkiyteb-cell/bey/internal/events"
	"github.com/anzallkiyteb-cell/bey/internal/shared/apperror"
	"github.com/anzallkiyteb-cell/bey/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type PunchIngester interface {
	IngestPunches(ctx context.Context, event events.PunchesIngestedEvent) (attendance.IngestResult, error)
}

// retryDelay is the pause before the next attempt at a batch that failed
// on storage.
var retryDelay = func(attempt int) time.Duration {
	return time.Duration(min(attempt, 10)) * 2 * time.Second
}

// ConsumePunches stores device punch batches until ctx is cancelled.
// Malformed or rejected batches are committed and skipped. Storage failures
// are retried on the same message: commits are cumulative, so the consumer
// never moves past a batch it has not stored.
func ConsumePunches(
	ctx context.Context,
	reader MessageReader,
	ingester PunchIngester,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.punches")
	log.Info("punch consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("punch consumer stopped")
				return
			}
			log.Error("fetch punch message failed", zap.Error(err))
			continue
		}

		msgCtx := ctx
		if rid := header(msg, "request_id"); rid != "" {
			msgCtx = contextutil.WithRequestID(ctx, rid)
		}

		var event events.PunchesIngestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode punches event failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		result, err := ingestWithRetry(msgCtx, ingester, event, log)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("punch consumer stopped, batch left uncommitted",
					zap.String("batch_id", event.BatchID),
					zap.Int64("offset", msg.Offset),
				)
				return
			}
			log.Warn("punch batch rejected, skipping",
				zap.String("batch_id", event.BatchID),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit punch message failed", zap.Error(err))
			continue
		}

		log.Info("punch batch ingested",
			zap.String("batch_id", event.BatchID),
			zap.String("device_id", event.DeviceID),
			zap.Int("received", result.Received),
			zap.Int("inserted", result.Inserted),
			zap.Int("duplicates", result.Duplicates),
			zap.Int("unknown", result.Unknown),
		)
	}
}

// ingestWithRetry returns on success, on a permanent error, or when ctx
// ends while waiting for the next attempt.
func ingestWithRetry(
	ctx context.Context,
	ingester PunchIngester,
	event events.PunchesIngestedEvent,
	log *zap.Logger,
) (attendance.IngestResult, error) {
	for attempt := 1; ; attempt++ {
		result, err := ingester.IngestPunches(ctx, event)
		if err == nil || isPermanent(err) {
			return result, err
		}

		delay := retryDelay(attempt)
		log.Error("ingest punch batch failed, retrying",
			zap.String("batch_id", event.BatchID),
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", delay),
			zap.Error(err),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return result, err
		case <-timer.C:
		}
	}
}

func header(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func isPermanent(err error) bool {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus < http.StatusInternalServerError
	}
	return false
}
