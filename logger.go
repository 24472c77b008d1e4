package weakify

import (
	"fmt"
	"log/slog"
)

// logger receives Lifetime transitions. Callbacks never log.
var logger *slog.Logger = slog.Default()

// SetLogger routes Lifetime transition records to l instead of slog.Default().
func SetLogger(l *slog.Logger) {
	logger = l
}

// logTransition records a lifecycle step of an owner at debug level.
func logTransition(kind string, key string, step string) {
	message := fmt.Sprintf("%s %s", kind, step)

	if key == "" {
		logger.Debug(message)
		return
	}

	logger.Debug(message, slog.String("key", key))
}
