package audit

import (
	"context"
	"testing"

	"github.com/anzallkiyteb-cell/bey/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := NewStdoutLogger(zap.New(core))

	ctx := contextutil.WithRequestID(context.Background(), "rid-9")
	l.Log(ctx, Log{
		Action:  ActionPayrollPaid,
		ActorID: "actor-1",
		Message: "payroll marked as paid",
		Meta:    map[string]any{"month": "2024-03"},
	})

	entries := logs.All()
	assert.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, ActionPayrollPaid, fields["action"])
	assert.Equal(t, "actor-1", fields["actor_id"])
	assert.Equal(t, "rid-9", fields["request_id"])
}
