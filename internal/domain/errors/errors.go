package errors

import (
	stderrors "errors"
	"fmt"
)

// ParseError is the single error kind reported by the SQL front end.
// Lexical failures, syntax failures and literal conversion failures all
// end up here; there is no location information beyond the message.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// NewParseError builds a ParseError from a format string
func NewParseError(format string, args ...interface{}) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...)}
}

// IsParseError reports whether err (or anything it wraps) is a ParseError
func IsParseError(err error) bool {
	var pe *ParseError
	return stderrors.As(err, &pe)
}

// ErrNotImplemented is returned by statement handlers whose storage
// collaborator has not been realized yet.
var ErrNotImplemented = stderrors.New("not implemented")

// TableError reports a storage-level failure tied to a table
type TableError struct {
	Table     string
	Operation string // "create", "insert", "scan"
	Reason    string
}

func (e *TableError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s %s failed", e.Operation, e.Table)
	}
	return fmt.Sprintf("%s %s failed: %s", e.Operation, e.Table, e.Reason)
}

func NewTableNotFound(table string) *TableError {
	return &TableError{Table: table, Operation: "lookup", Reason: "table not found"}
}

func NewTableExists(table string) *TableError {
	return &TableError{Table: table, Operation: "create", Reason: "table already exists"}
}
