package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/anzallkiyteb-cell/bey/internal/attendance"
	"github.com/anzallkiyteb-cell/bey/internal/events"
	"github.com/anzallkiyteb-cell/bey/internal/shared/apperror"
	"github.com/anzallkiyteb-cell/bey/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeReader struct {
	msgs      []kafkago.Message
	cancel    context.CancelFunc
	committed []int64
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(f.msgs) == 0 {
		f.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	m := f.msgs[0]
	f.msgs = f.msgs[1:]
	return m, nil
}

func (f *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		f.committed = append(f.committed, m.Offset)
	}
	return nil
}

type fakeIngester struct {
	errs map[string]error
	// flaky fails a batch with a storage error this many times first.
	flaky      map[string]int
	onAttempt  func(batchID string, attempt int)
	attempts   map[string]int
	batches    []string
	requestIDs []string
}

func (f *fakeIngester) IngestPunches(ctx context.Context, ev events.PunchesIngestedEvent) (attendance.IngestResult, error) {
	if f.attempts == nil {
		f.attempts = map[string]int{}
	}
	f.attempts[ev.BatchID]++
	f.batches = append(f.batches, ev.BatchID)
	f.requestIDs = append(f.requestIDs, contextutil.GetRequestID(ctx))
	if f.onAttempt != nil {
		f.onAttempt(ev.BatchID, f.attempts[ev.BatchID])
	}
	if err := f.errs[ev.BatchID]; err != nil {
		return attendance.IngestResult{}, err
	}
	if f.attempts[ev.BatchID] <= f.flaky[ev.BatchID] {
		return attendance.IngestResult{}, apperror.Internal(errors.New("connection refused"))
	}
	return attendance.IngestResult{Received: len(ev.Punches), Inserted: len(ev.Punches)}, nil
}

func fastRetry(t *testing.T) {
	t.Helper()
	prev := retryDelay
	retryDelay = func(int) time.Duration { return time.Millisecond }
	t.Cleanup(func() { retryDelay = prev })
}

func run(t *testing.T, ctx context.Context, reader *fakeReader, ingester *fakeIngester) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		ConsumePunches(ctx, reader, ingester, zap.NewNop())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop")
	}
}

func batch(t *testing.T, offset int64, id string) kafkago.Message {
	t.Helper()
	body, err := json.Marshal(events.PunchesIngestedEvent{
		EventType: events.EventPunchesIngested,
		BatchID:   id,
		Punches:   []events.RawPunch{{DeviceUserID: "12", PunchedAt: time.Now()}},
	})
	require.NoError(t, err)
	return kafkago.Message{Offset: offset, Value: body}
}

func TestConsumePunches(t *testing.T) {
	fastRetry(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ok := batch(t, 1, "b-ok")
	ok.Headers = []kafkago.Header{{Key: "request_id", Value: []byte("rid-1")}}
	reader := &fakeReader{
		cancel: cancel,
		msgs: []kafkago.Message{
			ok,
			{Offset: 2, Value: []byte("not json")},
			batch(t, 3, "b-rejected"),
			batch(t, 4, "b-db-down"),
			batch(t, 5, "b-after"),
		},
	}
	ingester := &fakeIngester{
		errs:  map[string]error{"b-rejected": apperror.ErrInvalidInput},
		flaky: map[string]int{"b-db-down": 2},
	}

	run(t, ctx, reader, ingester)

	assert.Equal(t, []string{"b-ok", "b-rejected", "b-db-down", "b-db-down", "b-db-down", "b-after"}, ingester.batches)
	assert.Equal(t, "rid-1", ingester.requestIDs[0])
	assert.Equal(t, 3, ingester.attempts["b-db-down"])
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, reader.committed)
}

func TestConsumePunches_StopWhileRetryingLeavesBatchUncommitted(t *testing.T) {
	fastRetry(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		msgs: []kafkago.Message{
			batch(t, 4, "b-db-down"),
			batch(t, 5, "b-after"),
		},
	}
	ingester := &fakeIngester{
		flaky: map[string]int{"b-db-down": 1000},
		onAttempt: func(batchID string, attempt int) {
			if batchID == "b-db-down" && attempt == 3 {
				cancel()
			}
		},
	}

	run(t, ctx, reader, ingester)

	assert.NotContains(t, ingester.batches, "b-after")
	assert.Empty(t, reader.committed)
	// Offset 5 was never fetched; the reader restarts from offset 4.
	require.Len(t, reader.msgs, 1)
	assert.Equal(t, int64(5), reader.msgs[0].Offset)
}
