package schema

import (
	"strings"

	"github.com/leengari/mini-sql/internal/domain/data"
)

// Column is a fully resolved column definition
type Column struct {
	Name     string
	DataType data.DataType
	Nullable bool
	// Default is nil when no default can be resolved, meaning the value
	// must be supplied at insert time.
	Default *data.Value
}

func (c Column) String() string {
	var out strings.Builder
	out.WriteString(c.Name)
	out.WriteString(" ")
	out.WriteString(c.DataType.String())
	if c.Nullable {
		out.WriteString(" NULL")
	} else {
		out.WriteString(" NOT NULL")
	}
	if c.Default != nil {
		out.WriteString(" DEFAULT ")
		out.WriteString(c.Default.String())
	}
	return out.String()
}

// Table is the resolved definition of a table: its name plus ordered columns
type Table struct {
	Name    string
	Columns []Column
}

// ColumnNames returns column names in declared order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// String renders the canonical CREATE TABLE statement for the schema.
// The output parses back to an equivalent schema.
func (t *Table) String() string {
	var out strings.Builder
	out.WriteString("CREATE TABLE ")
	out.WriteString(t.Name)
	out.WriteString(" (\n")
	for i, col := range t.Columns {
		out.WriteString("    ")
		out.WriteString(col.String())
		if i < len(t.Columns)-1 {
			out.WriteString(",")
		}
		out.WriteString("\n")
	}
	out.WriteString(");")
	return out.String()
}
