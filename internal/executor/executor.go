package executor

import (
	"fmt"

	"github.com/leengari/mini-sql/internal/domain/data"
	"github.com/leengari/mini-sql/internal/plan"
	"github.com/leengari/mini-sql/internal/storage"
)

// Executor runs one statement-specific handler
type Executor interface {
	Execute() (ResultSet, error)
}

// ResultSet is what a handler returns. The set is closed:
// CreateTableResult, InsertResult, SelectResult.
type ResultSet interface {
	// Message is a one-line human readable summary
	Message() string
	resultSet()
}

// CreateTableResult acknowledges a created table
type CreateTableResult struct {
	// Schema is the canonical CREATE TABLE rendering of the new table
	Schema string
}

func (r *CreateTableResult) Message() string { return r.Schema }
func (r *CreateTableResult) resultSet()      {}

// InsertResult reports how many rows were written
type InsertResult struct {
	Count int
}

func (r *InsertResult) Message() string { return fmt.Sprintf("INSERT %d", r.Count) }
func (r *InsertResult) resultSet()      {}

// SelectResult carries column names and rows of a scan
type SelectResult struct {
	Columns []string
	Rows    []data.Row
}

func (r *SelectResult) Message() string { return fmt.Sprintf("Returned %d rows", len(r.Rows)) }
func (r *SelectResult) resultSet()      {}

// Build maps a plan node to its handler. Every node type has exactly one
// handler; a node type missing here is a programming error.
func Build(node plan.Node, store storage.Engine) Executor {
	if store == nil {
		store = storage.Unimplemented{}
	}

	switch n := node.(type) {
	case *plan.CreateTableNode:
		return &CreateTableExecutor{schema: n.Schema, store: store}
	case *plan.InsertNode:
		return &InsertExecutor{tableName: n.TableName, columns: n.Columns, values: n.Values, store: store}
	case *plan.ScanNode:
		return &ScanExecutor{tableName: n.TableName, store: store}
	default:
		panic(fmt.Sprintf("executor: no handler for plan node %T", node))
	}
}

// Execute builds the handler for a plan's root and runs it
func Execute(p plan.Plan, store storage.Engine) (ResultSet, error) {
	return Build(p.Root, store).Execute()
}
