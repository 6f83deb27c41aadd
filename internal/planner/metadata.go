package planner

import "github.com/leengari/mini-sql/internal/plan"

// attachMetadata records descriptive facts about a node for logging and
// EXPLAIN output. Nothing downstream depends on it.
func attachMetadata(node plan.Node) {
	meta := node.Metadata()
	switch n := node.(type) {
	case *plan.CreateTableNode:
		meta["table"] = n.Schema.Name
		meta["columns"] = len(n.Schema.Columns)
	case *plan.InsertNode:
		meta["table"] = n.TableName
		meta["rows"] = len(n.Values)
		if len(n.Columns) == 0 {
			meta["columns"] = "all"
		} else {
			meta["columns"] = len(n.Columns)
		}
	case *plan.ScanNode:
		meta["table"] = n.TableName
		meta["scan_type"] = selectScanType(n)
	}
}

// selectScanType always picks a sequential scan: there are no predicates
// or indexes to choose between.
func selectScanType(*plan.ScanNode) string {
	return "sequential"
}
