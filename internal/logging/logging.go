package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	slogseq "github.com/sokkalf/slog-seq"
)

// Config controls where log records go
type Config struct {
	Level     slog.Level
	AddSource bool
	// SeqURL enables shipping records to a Seq server when non-empty
	SeqURL string
	// Output is the console destination. Defaults to os.Stdout.
	Output io.Writer
}

// DefaultConfig logs at info level to stdout only
func DefaultConfig() Config {
	return Config{
		Level:  slog.LevelInfo,
		Output: os.Stdout,
	}
}

// ConfigFromEnv starts from DefaultConfig and applies
// MINISQL_LOG_LEVEL (debug, info, warn, error) and MINISQL_SEQ_URL.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if lvl, ok := parseLevel(os.Getenv("MINISQL_LOG_LEVEL")); ok {
		cfg.Level = lvl
		cfg.AddSource = lvl == slog.LevelDebug
	}
	cfg.SeqURL = os.Getenv("MINISQL_SEQ_URL")
	return cfg
}

func parseLevel(s string) (slog.Level, bool) {
	if s == "" {
		return 0, false
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, false
	}
	return lvl, true
}

// multiHandler forwards log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}

// SetupLogger builds a logger from cfg and returns it with a cleanup
// function that flushes any remote handler. The global logger is not touched.
func SetupLogger(cfg Config) (*slog.Logger, func()) {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource,
	}

	consoleHandler := slog.NewTextHandler(cfg.Output, opts)
	if cfg.SeqURL == "" {
		return slog.New(consoleHandler), func() {}
	}

	_, seqHandler := slogseq.NewLogger(
		cfg.SeqURL,
		slogseq.WithBatchSize(1),
		slogseq.WithFlushInterval(500*time.Millisecond),
		slogseq.WithHandlerOptions(opts),
	)

	// If Seq is not available, use console only
	if seqHandler == nil {
		return slog.New(consoleHandler), func() {}
	}

	multi := &multiHandler{
		handlers: []slog.Handler{consoleHandler, seqHandler},
	}

	return slog.New(multi), func() {
		seqHandler.Close()
	}
}
