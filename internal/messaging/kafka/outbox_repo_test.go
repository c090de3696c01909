package kafka

import (
	"context"
	"testing"

	"github.com/anzallkiyteb-cell/bey/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent_CarriesRequestID(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "req-9")

	ev, err := NewEvent(ctx, "payroll", "e-1:2024-03", "payroll.paid", "payroll.paid.v1", map[string]int{"net": 1250})

	require.NoError(t, err)
	assert.Equal(t, "req-9", ev.RequestID)
	assert.Equal(t, OutboxStatusPending, ev.Status)
	assert.JSONEq(t, `{"net":1250}`, string(ev.Payload))
	assert.NoError(t, ValidateOutboxEvent(ev))
}

func TestValidateOutboxEvent(t *testing.T) {
	base := OutboxEvent{ID: "1", Topic: "t", AggregateID: "a", Payload: []byte("{}"), Status: OutboxStatusPending}
	assert.NoError(t, ValidateOutboxEvent(base))

	noTopic := base
	noTopic.Topic = ""
	assert.Error(t, ValidateOutboxEvent(noTopic))

	badStatus := base
	badStatus.Status = "queued"
	assert.Error(t, ValidateOutboxEvent(badStatus))
}

func TestOutboxRepository_CreateInTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs("1", "", "attendance", "2024-03-10", "attendance.sync.requested", "attendance.sync.requested.v1", []byte("{}"), OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	repo := NewOutboxRepository(db).WithTx(tx)

	err = repo.Create(context.Background(), OutboxEvent{
		ID:            "1",
		AggregateType: "attendance",
		AggregateID:   "2024-03-10",
		EventType:     "attendance.sync.requested",
		Topic:         "attendance.sync.requested.v1",
		Payload:       []byte("{}"),
		Status:        OutboxStatusPending,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_HasPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("attendance.sync.requested.v1", "2024-03-10", OutboxStatusPending, OutboxStatusFailed).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := NewOutboxRepository(db).HasPending(context.Background(), "attendance.sync.requested.v1", "2024-03-10")

	require.NoError(t, err)
	assert.True(t, ok)
}
