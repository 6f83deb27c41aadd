package executor

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leengari/mini-sql/internal/domain/data"
	"github.com/leengari/mini-sql/internal/domain/errors"
	"github.com/leengari/mini-sql/internal/domain/schema"
	"github.com/leengari/mini-sql/internal/parser"
	"github.com/leengari/mini-sql/internal/plan"
	"github.com/leengari/mini-sql/internal/planner"
	"github.com/leengari/mini-sql/internal/storage"
)

// memStore is a minimal in-memory storage engine for exercising handlers
type memStore struct {
	tables map[string]*schema.Table
	rows   map[string][]data.Row
}

func newMemStore() *memStore {
	return &memStore{
		tables: make(map[string]*schema.Table),
		rows:   make(map[string][]data.Row),
	}
}

func (m *memStore) CreateTable(table schema.Table) error {
	if _, ok := m.tables[table.Name]; ok {
		return errors.NewTableExists(table.Name)
	}
	m.tables[table.Name] = &table
	return nil
}

func (m *memStore) Insert(table string, columns []string, rows []data.Row) (int, error) {
	if _, ok := m.tables[table]; !ok {
		return 0, errors.NewTableNotFound(table)
	}
	m.rows[table] = append(m.rows[table], rows...)
	return len(rows), nil
}

func (m *memStore) Scan(table string) ([]string, []data.Row, error) {
	t, ok := m.tables[table]
	if !ok {
		return nil, nil, errors.NewTableNotFound(table)
	}
	return t.ColumnNames(), m.rows[table], nil
}

var _ storage.Engine = (*memStore)(nil)

func run(t *testing.T, store storage.Engine, sql string) (ResultSet, error) {
	t.Helper()
	stmt, err := parser.Parse(sql)
	require.NoError(t, err)
	return Execute(planner.Build(stmt), store)
}

func TestBuildDispatchesEveryNodeType(t *testing.T) {
	store := newMemStore()

	tests := []struct {
		node     plan.Node
		expected Executor
	}{
		{&plan.CreateTableNode{}, &CreateTableExecutor{}},
		{&plan.InsertNode{}, &InsertExecutor{}},
		{&plan.ScanNode{}, &ScanExecutor{}},
	}

	for _, tt := range tests {
		t.Run(tt.node.NodeType(), func(t *testing.T) {
			ex := Build(tt.node, store)
			require.IsType(t, tt.expected, ex)
		})
	}
}

func TestBuildPanicsOnNil(t *testing.T) {
	require.Panics(t, func() { Build(nil, nil) })
}

func TestCreateTable(t *testing.T) {
	store := newMemStore()

	res, err := run(t, store, "create table users (id int not null, name text default 'anon');")
	require.NoError(t, err)

	ct, ok := res.(*CreateTableResult)
	require.True(t, ok, "expected CreateTableResult, got %T", res)
	require.Equal(t, "CREATE TABLE users (\n"+
		"    id INTEGER NOT NULL,\n"+
		"    name STRING NULL DEFAULT 'anon'\n"+
		");", ct.Schema)
	require.Equal(t, ct.Schema, ct.Message())
	require.Contains(t, store.tables, "users")

	_, err = run(t, store, "create table users (id int);")
	require.Error(t, err)
	require.Contains(t, err.Error(), "create table users")
	require.Contains(t, err.Error(), "already exists")
}

func TestInsertAndScan(t *testing.T) {
	store := newMemStore()

	_, err := run(t, store, "create table tbl2 (c1 int, c2 string, c3 bool);")
	require.NoError(t, err)

	res, err := run(t, store, "insert into tbl2 (c1,c2,c3) values (3,'a',true),(4,'b',false);")
	require.NoError(t, err)
	ins, ok := res.(*InsertResult)
	require.True(t, ok)
	require.Equal(t, 2, ins.Count)
	require.Equal(t, "INSERT 2", ins.Message())

	res, err = run(t, store, "select * from tbl2;")
	require.NoError(t, err)
	sel, ok := res.(*SelectResult)
	require.True(t, ok)
	require.Equal(t, []string{"c1", "c2", "c3"}, sel.Columns)
	require.Equal(t, []data.Row{
		{data.NewInteger(3), data.NewString("a"), data.NewBoolean(true)},
		{data.NewInteger(4), data.NewString("b"), data.NewBoolean(false)},
	}, sel.Rows)
	require.Equal(t, "Returned 2 rows", sel.Message())
}

func TestScanMissingTable(t *testing.T) {
	_, err := run(t, newMemStore(), "select * from nope;")
	require.Error(t, err)

	var te *errors.TableError
	require.True(t, stderrors.As(err, &te))
	require.Equal(t, "nope", te.Table)
}

func TestUnimplementedStorage(t *testing.T) {
	for _, sql := range []string{
		"create table t (a int);",
		"insert into t values (1);",
		"select * from t;",
	} {
		t.Run(sql, func(t *testing.T) {
			res, err := run(t, nil, sql)
			require.Nil(t, res)
			require.ErrorIs(t, err, errors.ErrNotImplemented)
		})
	}
}

func TestEvaluateRows(t *testing.T) {
	stmt, err := parser.Parse("insert into t values (1, 4.5, 'x', null, false), (2, 0.0, '', true, null);")
	require.NoError(t, err)
	node := planner.Build(stmt).Root.(*plan.InsertNode)

	rows := evaluateRows(node.Values)
	require.Equal(t, []data.Row{
		{data.NewInteger(1), data.NewFloat(4.5), data.NewString("x"), data.Null(), data.NewBoolean(false)},
		{data.NewInteger(2), data.NewFloat(0), data.NewString(""), data.NewBoolean(true), data.Null()},
	}, rows)
}
