package schema

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/mini-sql/internal/domain/data"
)

func newTable() *Table {
	def := data.NewInteger(1)
	return &Table{
		Name: "users",
		Columns: []Column{
			{Name: "id", DataType: data.Integer, Nullable: false},
			{Name: "score", DataType: data.Integer, Nullable: true, Default: &def},
		},
	}
}

func TestColumnNames(t *testing.T) {
	assert.DeepEqual(t, newTable().ColumnNames(), []string{"id", "score"})
}

func TestTableString(t *testing.T) {
	assert.Equal(t, newTable().String(),
		"CREATE TABLE users (\n    id INTEGER NOT NULL,\n    score INTEGER NULL DEFAULT 1\n);")
}
