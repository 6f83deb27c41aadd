package plan

import (
	"strings"
	"testing"

	"github.com/leengari/mini-sql/internal/domain/data"
	"github.com/leengari/mini-sql/internal/domain/schema"
	"gotest.tools/v3/assert"
)

// TestLeafNodes verifies every node kind is a leaf
func TestLeafNodes(t *testing.T) {
	nodes := []Node{
		&CreateTableNode{Schema: schema.Table{Name: "t"}},
		&InsertNode{TableName: "t"},
		&ScanNode{TableName: "t"},
	}

	for _, n := range nodes {
		if len(n.Children()) != 0 {
			t.Errorf("%s should have 0 children, got %d", n.NodeType(), len(n.Children()))
		}
	}
}

// TestMetadata verifies metadata attachment
func TestMetadata(t *testing.T) {
	node := &ScanNode{TableName: "users"}

	// Metadata should never be nil
	if node.Metadata() == nil {
		t.Error("Metadata() should never return nil")
	}

	node.Metadata()["test_key"] = "test_value"
	node.Metadata()["estimated_rows"] = 1000

	if val, ok := node.Metadata()["test_key"].(string); !ok || val != "test_value" {
		t.Errorf("Expected test_key='test_value', got %v", node.Metadata()["test_key"])
	}

	if val, ok := node.Metadata()["estimated_rows"].(int); !ok || val != 1000 {
		t.Errorf("Expected estimated_rows=1000, got %v", node.Metadata()["estimated_rows"])
	}
}

// TestPrintTree verifies the rendering is stable
func TestPrintTree(t *testing.T) {
	node := &CreateTableNode{Schema: schema.Table{
		Name:    "t",
		Columns: []schema.Column{{Name: "a", DataType: data.Integer, Nullable: true}},
	}}
	node.Metadata()["table"] = "t"
	node.Metadata()["columns"] = 1

	p := Plan{Root: node}
	out := p.String()

	assert.Equal(t, out, "CREATE_TABLE [columns=1 table=t]\n")
	assert.Assert(t, strings.HasSuffix(out, "\n"))
	assert.Equal(t, PrintTree(nil), "")
}
