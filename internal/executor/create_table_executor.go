package executor

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/leengari/mini-sql/internal/domain/schema"
	"github.com/leengari/mini-sql/internal/storage"
)

// CreateTableExecutor hands a resolved schema to storage
type CreateTableExecutor struct {
	schema schema.Table
	store  storage.Engine
}

func (e *CreateTableExecutor) Execute() (ResultSet, error) {
	slog.Debug("create table", "table", e.schema.Name, "columns", e.schema.ColumnNames())

	if err := e.store.CreateTable(e.schema); err != nil {
		return nil, errors.Wrapf(err, "create table %s", e.schema.Name)
	}

	return &CreateTableResult{Schema: e.schema.String()}, nil
}
