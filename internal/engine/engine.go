package engine

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/leengari/mini-sql/internal/executor"
	"github.com/leengari/mini-sql/internal/parser"
	"github.com/leengari/mini-sql/internal/parser/lexer"
	"github.com/leengari/mini-sql/internal/plan"
	"github.com/leengari/mini-sql/internal/planner"
	"github.com/leengari/mini-sql/internal/storage"
)

// Config holds the collaborators an Engine is built from
type Config struct {
	// Logger receives engine diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
	// Store backs the statement handlers. Defaults to storage.Unimplemented.
	Store storage.Engine
	// Registerer receives the engine metrics. Nil leaves them unregistered.
	Registerer prometheus.Registerer
}

// DefaultConfig returns a Config with no storage and no metrics registry
func DefaultConfig() Config {
	return Config{
		Logger: slog.Default(),
		Store:  storage.Unimplemented{},
	}
}

// Engine is the main entry point for the SQL front end
type Engine struct {
	logger    *slog.Logger
	store     storage.Engine
	metrics   *Metrics
	observers []Observer // Observers for lifecycle events

	tokenize func(string) ([]lexer.Token, error)
}

// New creates a new Engine instance
func New(cfg Config) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Store == nil {
		cfg.Store = storage.Unimplemented{}
	}

	metrics, err := NewMetrics(cfg.Registerer)
	if err != nil {
		cfg.Logger.Warn("engine metrics not fully registered", "error", err)
	}

	return &Engine{
		logger:    cfg.Logger,
		store:     cfg.Store,
		metrics:   metrics,
		observers: make([]Observer, 0),
		tokenize:  lexer.Tokenize,
	}
}

// Execute processes a SQL string and returns the handler's result
func (e *Engine) Execute(sql string) (executor.ResultSet, error) {
	queryID := uuid.NewString()

	p, err := e.plan(queryID, sql)
	if err != nil {
		return nil, err
	}

	// 4. Dispatch
	e.notify(Event{Type: EventExecStart, QueryID: queryID, Data: p.Root.NodeType()})
	start := time.Now()
	result, err := executor.Execute(p, e.store)
	e.metrics.execLatency.Observe(float64(time.Since(start).Nanoseconds()))
	if err != nil {
		e.logger.Debug("execution failed", "query_id", queryID, "error", err)
		return nil, errors.Wrap(err, "execute")
	}
	e.notify(Event{Type: EventExecEnd, QueryID: queryID, Data: result.Message()})

	return result, nil
}

// Explain runs the front end up to planning and returns the plan
// without dispatching it.
func (e *Engine) Explain(sql string) (plan.Plan, error) {
	return e.plan(uuid.NewString(), sql)
}

func (e *Engine) plan(queryID, sql string) (plan.Plan, error) {
	// 1. Tokenize
	e.notify(Event{Type: EventLexStart, QueryID: queryID, Data: sql})
	start := time.Now()
	tokens, err := e.tokenize(sql)
	e.metrics.lexLatency.Observe(float64(time.Since(start).Nanoseconds()))
	if err != nil {
		e.metrics.parseErrors.Inc()
		return plan.Plan{}, errors.Wrap(err, "lex")
	}
	e.notify(Event{Type: EventLexEnd, QueryID: queryID, Data: len(tokens)})

	// 2. Parse the scanned tokens
	e.notify(Event{Type: EventParseStart, QueryID: queryID})
	start = time.Now()
	stmt, err := parser.NewFromTokens(tokens).Parse()
	e.metrics.parseLatency.Observe(float64(time.Since(start).Nanoseconds()))
	if err != nil {
		e.metrics.parseErrors.Inc()
		return plan.Plan{}, errors.Wrap(err, "parse")
	}
	e.notify(Event{Type: EventParseEnd, QueryID: queryID, Data: stmt.TokenLiteral()})

	// 3. Plan
	e.notify(Event{Type: EventPlanStart, QueryID: queryID})
	start = time.Now()
	p := planner.Build(stmt)
	e.metrics.planLatency.Observe(float64(time.Since(start).Nanoseconds()))
	e.metrics.statements.WithLabelValues(p.Root.NodeType()).Inc()
	e.notify(Event{Type: EventPlanEnd, QueryID: queryID, Data: p.Root.Metadata()})

	return p, nil
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}
