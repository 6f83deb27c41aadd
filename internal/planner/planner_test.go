package planner

import (
	"testing"

	"github.com/leengari/mini-sql/internal/domain/data"
	"github.com/leengari/mini-sql/internal/domain/schema"
	"github.com/leengari/mini-sql/internal/parser"
	"github.com/leengari/mini-sql/internal/parser/ast"
	"github.com/leengari/mini-sql/internal/plan"
	"github.com/stretchr/testify/require"
)

func mustPlan(t *testing.T, sql string) plan.Plan {
	t.Helper()
	stmt, err := parser.Parse(sql)
	require.NoError(t, err)
	return Build(stmt)
}

func valuePtr(v data.Value) *data.Value {
	return &v
}

func TestPlanCreateTable(t *testing.T) {
	p1 := mustPlan(t, `
		create table tbl1 (
			a int default 100,
			b float not null,
			c varchar null,
			d bool default true,
			e text
		);`)

	p2 := mustPlan(t, `
		CREATE            TABLE tbl1 (
			a INT default     100,
			b float NOT NULL     ,
			c VarChar      null,
			d       bool DEFAULT        TRUE,
			e TEXT
		);`)
	require.Equal(t, p1, p2)

	node, ok := p1.Root.(*plan.CreateTableNode)
	require.True(t, ok, "expected CreateTableNode, got %T", p1.Root)

	expected := schema.Table{
		Name: "tbl1",
		Columns: []schema.Column{
			{Name: "a", DataType: data.Integer, Nullable: true, Default: valuePtr(data.NewInteger(100))},
			{Name: "b", DataType: data.Float, Nullable: false, Default: nil},
			{Name: "c", DataType: data.String, Nullable: true, Default: valuePtr(data.Null())},
			{Name: "d", DataType: data.Boolean, Nullable: true, Default: valuePtr(data.NewBoolean(true))},
			{Name: "e", DataType: data.String, Nullable: true, Default: valuePtr(data.Null())},
		},
	}
	require.Equal(t, expected, node.Schema)
	require.Equal(t, "tbl1", node.Metadata()["table"])
	require.Equal(t, 5, node.Metadata()["columns"])
}

func TestResolveColumn(t *testing.T) {
	f, tr := false, true

	tests := []struct {
		name     string
		def      *ast.ColumnDefinition
		nullable bool
		value    *data.Value
	}{
		{
			name:     "no modifiers",
			def:      &ast.ColumnDefinition{Name: "x", DataType: data.Integer},
			nullable: true,
			value:    valuePtr(data.Null()),
		},
		{
			name:     "not null without default",
			def:      &ast.ColumnDefinition{Name: "x", DataType: data.Float, Nullable: &f},
			nullable: false,
			value:    nil,
		},
		{
			name:     "not null with default",
			def:      &ast.ColumnDefinition{Name: "x", DataType: data.Float, Nullable: &f, Default: ast.NewFloat(4.55)},
			nullable: false,
			value:    valuePtr(data.NewFloat(4.55)),
		},
		{
			name:     "explicit null",
			def:      &ast.ColumnDefinition{Name: "x", DataType: data.String, Nullable: &tr},
			nullable: true,
			value:    valuePtr(data.Null()),
		},
		{
			name:     "default only",
			def:      &ast.ColumnDefinition{Name: "x", DataType: data.Integer, Default: ast.NewInt(100)},
			nullable: true,
			value:    valuePtr(data.NewInteger(100)),
		},
		{
			name:     "default null on not null column",
			def:      &ast.ColumnDefinition{Name: "x", DataType: data.String, Nullable: &f, Default: ast.NewNull()},
			nullable: false,
			value:    valuePtr(data.Null()),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := resolveColumn(tt.def)
			require.Equal(t, tt.def.Name, col.Name)
			require.Equal(t, tt.def.DataType, col.DataType)
			require.Equal(t, tt.nullable, col.Nullable)
			require.Equal(t, tt.value, col.Default)
		})
	}
}

func TestPlanInsert(t *testing.T) {
	p1 := mustPlan(t, "insert into tbl1 values (1, 2, 3, 'a', true);")
	ins, ok := p1.Root.(*plan.InsertNode)
	require.True(t, ok)
	require.Equal(t, "tbl1", ins.TableName)
	require.NotNil(t, ins.Columns)
	require.Empty(t, ins.Columns)
	require.Equal(t, [][]ast.Expression{{
		ast.NewInt(1), ast.NewInt(2), ast.NewInt(3), ast.NewString("a"), ast.NewBool(true),
	}}, ins.Values)
	require.Equal(t, "all", ins.Metadata()["columns"])

	p2 := mustPlan(t, "insert into tbl2 (c1, c2, c3) values (3, 'a', true),(4, 'b', false);")
	ins, ok = p2.Root.(*plan.InsertNode)
	require.True(t, ok)
	require.Equal(t, "tbl2", ins.TableName)
	require.Equal(t, []string{"c1", "c2", "c3"}, ins.Columns)
	require.Equal(t, [][]ast.Expression{
		{ast.NewInt(3), ast.NewString("a"), ast.NewBool(true)},
		{ast.NewInt(4), ast.NewString("b"), ast.NewBool(false)},
	}, ins.Values)
	require.Equal(t, 2, ins.Metadata()["rows"])
}

func TestPlanSelect(t *testing.T) {
	p := mustPlan(t, "select * from tbl1;")
	scan, ok := p.Root.(*plan.ScanNode)
	require.True(t, ok, "expected ScanNode, got %T", p.Root)
	require.Equal(t, "tbl1", scan.TableName)
	require.Equal(t, "sequential", scan.Metadata()["scan_type"])

	require.Equal(t, p, mustPlan(t, "SELECT * FROM TBL1;"))
	require.Equal(t, "SCAN [scan_type=sequential table=tbl1]\n", p.String())
}

func TestPlanDoesNotCheckCatalog(t *testing.T) {
	// column/value count mismatches are passed through untouched
	p := mustPlan(t, "insert into nowhere (a, b) values (1), (1, 2, 3);")
	ins := p.Root.(*plan.InsertNode)
	require.Len(t, ins.Values[0], 1)
	require.Len(t, ins.Values[1], 3)
}

func TestBuildPanicsOnNilStatement(t *testing.T) {
	require.Panics(t, func() { Build(nil) })
}

func TestSchemaRenderingRoundTrips(t *testing.T) {
	p := mustPlan(t, "create table t (a int default 100, b float not null, c string, d double default 2.0);")
	node := p.Root.(*plan.CreateTableNode)

	rendered := node.Schema.String()
	require.Equal(t, "CREATE TABLE t (\n"+
		"    a INTEGER NULL DEFAULT 100,\n"+
		"    b FLOAT NOT NULL,\n"+
		"    c STRING NULL DEFAULT NULL,\n"+
		"    d FLOAT NULL DEFAULT 2.0\n"+
		");", rendered)

	again := mustPlan(t, rendered)
	require.Equal(t, node.Schema, again.Root.(*plan.CreateTableNode).Schema)
}
