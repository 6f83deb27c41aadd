package planner

import (
	"fmt"

	"github.com/leengari/mini-sql/internal/domain/data"
	"github.com/leengari/mini-sql/internal/domain/schema"
	"github.com/leengari/mini-sql/internal/parser/ast"
	"github.com/leengari/mini-sql/internal/plan"
)

// Build lowers a parsed statement into a logical plan. It cannot fail:
// the parser has already established syntactic validity, and catalog
// checks (table existence, column counts, types) belong to execution.
func Build(stmt ast.Statement) plan.Plan {
	var node plan.Node
	switch s := stmt.(type) {
	case *ast.CreateTableStatement:
		node = planCreateTable(s)
	case *ast.InsertStatement:
		node = planInsert(s)
	case *ast.SelectStatement:
		node = planSelect(s)
	default:
		panic(fmt.Sprintf("planner: unsupported statement type %T", stmt))
	}
	attachMetadata(node)
	return plan.Plan{Root: node}
}

func planCreateTable(stmt *ast.CreateTableStatement) *plan.CreateTableNode {
	columns := make([]schema.Column, len(stmt.Columns))
	for i, c := range stmt.Columns {
		columns[i] = resolveColumn(c)
	}
	return &plan.CreateTableNode{
		Schema: schema.Table{Name: stmt.Name, Columns: columns},
	}
}

// resolveColumn materializes nullability and the default value:
// an explicit DEFAULT wins; otherwise nullable columns default to NULL and
// NOT NULL columns have no default at all.
func resolveColumn(c *ast.ColumnDefinition) schema.Column {
	nullable := true
	if c.Nullable != nil {
		nullable = *c.Nullable
	}

	var def *data.Value
	switch {
	case c.Default != nil:
		v := c.Default.Evaluate()
		def = &v
	case nullable:
		v := data.Null()
		def = &v
	}

	return schema.Column{
		Name:     c.Name,
		DataType: c.DataType,
		Nullable: nullable,
		Default:  def,
	}
}

func planInsert(stmt *ast.InsertStatement) *plan.InsertNode {
	columns := stmt.Columns
	if columns == nil {
		columns = []string{}
	}
	return &plan.InsertNode{
		TableName: stmt.TableName,
		Columns:   columns,
		Values:    stmt.Values,
	}
}

func planSelect(stmt *ast.SelectStatement) *plan.ScanNode {
	return &plan.ScanNode{TableName: stmt.TableName}
}
