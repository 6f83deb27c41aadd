package plan

import (
	"fmt"
	"sort"
	"strings"
)

// PrintTree prints the plan tree with indentation. Metadata is printed
// in key order so the output is stable.
func PrintTree(node Node) string {
	var out strings.Builder
	printTreeHelper(node, 0, &out)
	return out.String()
}

func printTreeHelper(node Node, depth int, out *strings.Builder) {
	if node == nil {
		return
	}

	indent := strings.Repeat("  ", depth)
	out.WriteString(indent)
	out.WriteString(node.NodeType())

	meta := node.Metadata()
	if len(meta) > 0 {
		keys := make([]string, 0, len(meta))
		for k := range meta {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s=%v", k, meta[k])
		}
		out.WriteString(" [")
		out.WriteString(strings.Join(parts, " "))
		out.WriteString("]")
	}
	out.WriteString("\n")

	for _, child := range node.Children() {
		printTreeHelper(child, depth+1, out)
	}
}
