package logger

import (
	"github.com/amirhossein-jamali/point-exchange/internal/domain/port/core"
)

// structuredAuditLogger narrates balance mutations and failures through the
// structured logger. Every entry lands as one append-only log record, so the
// operational trail can be rebuilt from log storage alone.
type structuredAuditLogger struct {
	logger core.Logger
}

// NewAuditLogger creates an audit logger writing to the given structured logger
func NewAuditLogger(logger core.Logger) core.AuditLogger {
	return &structuredAuditLogger{logger: logger}
}

// RecordMutation appends one successful balance mutation to the trail
func (a *structuredAuditLogger) RecordMutation(entry core.AuditEntry) {
	a.logger.Info("Balance mutated", map[string]any{
		"audit":        true,
		"run_id":       entry.RunID,
		"event_kind":   entry.EventKind,
		"user_name":    entry.UserName,
		"game":         entry.Game,
		"coefficient":  entry.Coefficient,
		"delta":        entry.Delta,
		"bank_before":  entry.BankBefore,
		"bank_after":   entry.BankAfter,
		"last_balance": entry.LastBalance,
		"bot_balance":  entry.BotBalance,
	})
}

// RecordError appends a processing failure with its context tag
func (a *structuredAuditLogger) RecordError(runID, contextTag string, err error, fields map[string]any) {
	logFields := map[string]any{
		"audit":   true,
		"run_id":  runID,
		"context": contextTag,
		"error":   err.Error(),
	}
	for k, v := range fields {
		logFields[k] = v
	}
	a.logger.Error("Message processing failed", logFields)
}
