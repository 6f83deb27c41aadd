// Package minisql turns SQL text into a logical plan and dispatches it to a
// storage collaborator.
//
// The three stages can be driven one by one:
//
//	stmt, err := minisql.Parse("select * from users;")
//	p := minisql.Build(stmt)
//	res, err := minisql.Execute(p, store)
//
// or through an Engine, which adds query ids, lifecycle observers,
// structured logging and metrics.
package minisql

import (
	"github.com/leengari/mini-sql/internal/domain/data"
	"github.com/leengari/mini-sql/internal/domain/errors"
	"github.com/leengari/mini-sql/internal/domain/schema"
	"github.com/leengari/mini-sql/internal/engine"
	"github.com/leengari/mini-sql/internal/executor"
	"github.com/leengari/mini-sql/internal/logging"
	"github.com/leengari/mini-sql/internal/parser"
	"github.com/leengari/mini-sql/internal/parser/ast"
	"github.com/leengari/mini-sql/internal/plan"
	"github.com/leengari/mini-sql/internal/planner"
	"github.com/leengari/mini-sql/internal/storage"
)

type (
	Statement = ast.Statement
	Plan      = plan.Plan
	PlanNode  = plan.Node

	ResultSet         = executor.ResultSet
	CreateTableResult = executor.CreateTableResult
	InsertResult      = executor.InsertResult
	SelectResult      = executor.SelectResult

	// Storage is the contract a table store implements to back execution
	Storage = storage.Engine
	// Unimplemented is a Storage whose every operation fails with ErrNotImplemented
	Unimplemented = storage.Unimplemented

	Table    = schema.Table
	Column   = schema.Column
	DataType = data.DataType
	Value    = data.Value
	Row      = data.Row

	ParseError = errors.ParseError
	TableError = errors.TableError

	Engine    = engine.Engine
	Config    = engine.Config
	Event     = engine.Event
	EventType = engine.EventType
	Observer  = engine.Observer
	LogConfig = logging.Config
)

const (
	Boolean = data.Boolean
	Float   = data.Float
	Integer = data.Integer
	String  = data.String
)

// ErrNotImplemented is returned by Unimplemented storage
var ErrNotImplemented = errors.ErrNotImplemented

var (
	Null       = data.Null
	NewBoolean = data.NewBoolean
	NewFloat   = data.NewFloat
	NewInteger = data.NewInteger
	NewString  = data.NewString

	// NewTableNotFound and NewTableExists build the errors a Storage
	// reports for a missing or duplicate table.
	NewTableNotFound = errors.NewTableNotFound
	NewTableExists   = errors.NewTableExists

	IsParseError = errors.IsParseError
)

// Parse parses exactly one statement terminated by ';'
func Parse(sql string) (Statement, error) {
	return parser.Parse(sql)
}

// Build lowers a parsed statement into a logical plan
func Build(stmt Statement) Plan {
	return planner.Build(stmt)
}

// Execute dispatches a plan to its statement handler. A nil store
// behaves like Unimplemented.
func Execute(p Plan, store Storage) (ResultSet, error) {
	return executor.Execute(p, store)
}

// NewEngine builds an Engine from cfg without touching logging setup
func NewEngine(cfg Config) *Engine {
	return engine.New(cfg)
}

// Open builds an Engine that logs through a logger set up from logCfg.
// Every lifecycle event is logged. The returned function flushes the log
// sinks and should be called when the engine is no longer used.
func Open(cfg Config, logCfg LogConfig) (*Engine, func()) {
	logger, cleanup := logging.SetupLogger(logCfg)
	if cfg.Logger == nil {
		cfg.Logger = logger
	}

	eng := engine.New(cfg)
	eng.AddObserver(engine.NewLoggingObserver(logger))
	return eng, cleanup
}

// OpenFromEnv is Open with logging configured from MINISQL_LOG_LEVEL and
// MINISQL_SEQ_URL.
func OpenFromEnv(cfg Config) (*Engine, func()) {
	return Open(cfg, logging.ConfigFromEnv())
}
