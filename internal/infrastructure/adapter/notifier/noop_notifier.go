package notifier

import (
	"context"

	"github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/external"
)

// LogNotifier writes notifications to the log when no chat is configured
type LogNotifier struct {
	logger core.Logger
}

// NewLogNotifier creates a notifier that only logs
func NewLogNotifier(logger core.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the notification
func (n *LogNotifier) Notify(_ context.Context, note external.Notification) error {
	n.logger.Info("Operator notification", map[string]any{
		"kind":    note.Kind,
		"message": note.Message,
	})
	return nil
}
