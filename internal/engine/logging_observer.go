package engine

import "log/slog"

// LoggingObserver logs every lifecycle event as a structured record
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a logging observer; a nil logger means slog.Default()
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{logger: logger}
}

func (lo *LoggingObserver) OnEvent(event Event) {
	lo.logger.Info("query_lifecycle",
		"event", event.Type,
		"query_id", event.QueryID,
		"timestamp", event.Timestamp,
		"data", event.Data,
	)
}
