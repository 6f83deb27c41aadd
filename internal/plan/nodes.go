package plan

import (
	"github.com/leengari/mini-sql/internal/domain/schema"
	"github.com/leengari/mini-sql/internal/parser/ast"
)

// Node is the base interface for all logical plan nodes.
// The set is closed: CreateTableNode, InsertNode, ScanNode.
type Node interface {
	// Children returns child nodes for tree walking
	Children() []Node

	// Metadata returns attached metadata (never nil)
	Metadata() map[string]any

	// NodeType returns the type identifier (for debugging/logging)
	NodeType() string

	planNode()
}

// Plan wraps exactly one root node
type Plan struct {
	Root Node
}

// String renders the plan tree, one node per line
func (p Plan) String() string {
	return PrintTree(p.Root)
}

// CreateTableNode creates a table with a fully resolved schema
type CreateTableNode struct {
	Schema schema.Table

	metadata map[string]any
}

func (n *CreateTableNode) Children() []Node {
	return nil
}

func (n *CreateTableNode) Metadata() map[string]any {
	if n.metadata == nil {
		n.metadata = make(map[string]any)
	}
	return n.metadata
}

func (n *CreateTableNode) NodeType() string {
	return "CREATE_TABLE"
}

func (n *CreateTableNode) planNode() {}

// InsertNode inserts literal tuples. An empty Columns slice means every
// column in declared order; resolving that is left to execution.
type InsertNode struct {
	TableName string
	Columns   []string
	Values    [][]ast.Expression

	metadata map[string]any
}

func (n *InsertNode) Children() []Node {
	return nil
}

func (n *InsertNode) Metadata() map[string]any {
	if n.metadata == nil {
		n.metadata = make(map[string]any)
	}
	return n.metadata
}

func (n *InsertNode) NodeType() string {
	return "INSERT"
}

func (n *InsertNode) planNode() {}

// ScanNode is a full, unfiltered scan of a table (leaf node)
type ScanNode struct {
	TableName string

	metadata map[string]any
}

func (n *ScanNode) Children() []Node {
	return nil // Leaf node has no children
}

func (n *ScanNode) Metadata() map[string]any {
	if n.metadata == nil {
		n.metadata = make(map[string]any)
	}
	return n.metadata
}

func (n *ScanNode) NodeType() string {
	return "SCAN"
}

func (n *ScanNode) planNode() {}
