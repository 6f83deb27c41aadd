package executor

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/leengari/mini-sql/internal/domain/data"
	"github.com/leengari/mini-sql/internal/parser/ast"
	"github.com/leengari/mini-sql/internal/storage"
)

// InsertExecutor evaluates literal tuples into rows and writes them
type InsertExecutor struct {
	tableName string
	columns   []string
	values    [][]ast.Expression
	store     storage.Engine
}

func (e *InsertExecutor) Execute() (ResultSet, error) {
	rows := evaluateRows(e.values)

	slog.Debug("insert", "table", e.tableName, "columns", e.columns, "rows", len(rows))

	count, err := e.store.Insert(e.tableName, e.columns, rows)
	if err != nil {
		return nil, errors.Wrapf(err, "insert into %s", e.tableName)
	}

	return &InsertResult{Count: count}, nil
}

// evaluateRows turns each tuple of literal expressions into a row of values
func evaluateRows(values [][]ast.Expression) []data.Row {
	rows := make([]data.Row, len(values))
	for i, tuple := range values {
		row := make(data.Row, len(tuple))
		for j, expr := range tuple {
			row[j] = expr.Evaluate()
		}
		rows[i] = row
	}
	return rows
}
