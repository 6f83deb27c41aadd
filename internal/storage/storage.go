package storage

import (
	"github.com/leengari/mini-sql/internal/domain/data"
	"github.com/leengari/mini-sql/internal/domain/errors"
	"github.com/leengari/mini-sql/internal/domain/schema"
)

// Engine is the storage collaborator the statement handlers talk to.
//
// Table storage lives outside this module and plugs in through the public
// minisql.Storage alias. Implementations own the catalog,
// resolve an empty insert column list to every column in declared order,
// apply column defaults and enforce nullability.
type Engine interface {
	// CreateTable registers a new table with the given resolved schema.
	CreateTable(table schema.Table) error

	// Insert stores rows and reports how many were written.
	// columns is empty when the statement named no columns.
	Insert(table string, columns []string, rows []data.Row) (int, error)

	// Scan returns every row of a table together with its column names.
	Scan(table string) (columns []string, rows []data.Row, err error)
}

// Unimplemented is the storage engine shipped with the front end.
// Every operation fails with errors.ErrNotImplemented.
type Unimplemented struct{}

var _ Engine = Unimplemented{}

func (Unimplemented) CreateTable(schema.Table) error {
	return errors.ErrNotImplemented
}

func (Unimplemented) Insert(string, []string, []data.Row) (int, error) {
	return 0, errors.ErrNotImplemented
}

func (Unimplemented) Scan(string) ([]string, []data.Row, error) {
	return nil, nil, errors.ErrNotImplemented
}
