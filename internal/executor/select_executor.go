package executor

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/leengari/mini-sql/internal/storage"
)

// ScanExecutor returns every row of a table
type ScanExecutor struct {
	tableName string
	store     storage.Engine
}

func (e *ScanExecutor) Execute() (ResultSet, error) {
	columns, rows, err := e.store.Scan(e.tableName)
	if err != nil {
		return nil, errors.Wrapf(err, "scan %s", e.tableName)
	}

	slog.Debug("scan", "table", e.tableName, "rows", len(rows))

	return &SelectResult{Columns: columns, Rows: rows}, nil
}
