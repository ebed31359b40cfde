package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ZapAuditLogger records server lifecycle events (startup, shutdown) on the
// global logger under the "audit" name, keeping the trail in the same stream
// operators already tail.
type ZapAuditLogger struct{}

func NewZapAuditLogger() *ZapAuditLogger {
	return &ZapAuditLogger{}
}

func (l *ZapAuditLogger) Log(_ context.Context, entry AuditLog) {
	zap.L().Named("audit").Info("audit event",
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}
