package audit

import (
	"context"
	"time"

	"github.com/anzallkiyteb-cell/bey/internal/shared/contextutil"

	"go.uber.org/zap"
)

const (
	ActionPayrollPaid     = "PAYROLL_PAID"
	ActionPayrollUnpaid   = "PAYROLL_UNPAID"
	ActionAdvanceDecided  = "ADVANCE_DECIDED"
	ActionScheduleApplied = "SCHEDULE_MONDAY_APPLIED"
	ActionServerShutdown  = "SERVER_SHUTDOWN"
)

type Log struct {
	Action  string
	ActorID string
	Message string
	Meta    map[string]any
}

type Logger interface {
	Log(ctx context.Context, entry Log)
}

// StdoutLogger writes audit events through zap under the "audit" name.
type StdoutLogger struct {
	logger *zap.Logger
}

func NewStdoutLogger(logger ...*zap.Logger) *StdoutLogger {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	return &StdoutLogger{logger: l}
}

func (l *StdoutLogger) Log(ctx context.Context, entry Log) {
	fields := append(contextutil.Fields(ctx),
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("actor_id", entry.ActorID),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
	l.logger.Info("audit event", fields...)
}

// Nop discards audit events.
type Nop struct{}

func (Nop) Log(context.Context, Log) {}
