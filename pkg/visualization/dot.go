// Package visualization renders assembly systems for external tooling: a
// GraphViz DOT export and a 2D flow layout for custom renderers. It only
// consumes the public query surface of pkg/assembly.
package visualization

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dd0wney/wordmill/pkg/assembly"
)

// kindShapes maps node kinds to the GraphViz shapes used for assembly
// networks: material flows top to bottom from inverted trapezium sources
// into trapezium sinks.
var kindShapes = map[assembly.Kind]string{
	assembly.KindSource:    "invtrapezium",
	assembly.KindSink:      "trapezium",
	assembly.KindInventory: "invtriangle",
	assembly.KindMachine:   "box",
}

// nodeLabel returns the display label for a node. Machines are labeled
// with their two input words joined by "+".
func nodeLabel(n *assembly.Node) string {
	if n.Kind() == assembly.KindMachine {
		return strings.Join(n.Inputs(), "+")
	}
	return n.Word()
}

// nodeSortKey orders nodes for emission. Kind and label alone are not a
// total order: strategies without reuse create several inventories with
// the same word, so sorted neighbor labels break the ties between them.
func nodeSortKey(n *assembly.Node) string {
	return fmt.Sprintf("%d|%s|%s|%s",
		n.Kind(),
		nodeLabel(n),
		strings.Join(neighborLabels(n.InputNodes()), ","),
		strings.Join(neighborLabels(n.OutputNodes()), ","),
	)
}

func neighborLabels(neighbors []*assembly.Node) []string {
	labels := make([]string, len(neighbors))
	for i, n := range neighbors {
		labels[i] = nodeLabel(n)
	}
	sort.Strings(labels)
	return labels
}

// DOT returns a GraphViz digraph representation of the system. Nodes are
// keyed by a running index ordered by kind, label, and neighbor labels,
// and edge statements are emitted in sorted order, so repeated renders of
// the same topology are identical and diffs stay readable.
func DOT(sys *assembly.System) string {
	nodes := sys.Nodes()
	keys := make(map[*assembly.Node]string, len(nodes))
	for _, n := range nodes {
		keys[n] = nodeSortKey(n)
	}
	sort.Slice(nodes, func(i, j int) bool {
		return keys[nodes[i]] < keys[nodes[j]]
	})

	index := make(map[*assembly.Node]int, len(nodes))
	for i, n := range nodes {
		index[n] = i
	}

	var b strings.Builder
	fmt.Fprintf(&b, "digraph wordmill {\n")
	for i, n := range nodes {
		fmt.Fprintf(&b, "\t%q [shape=%s, label=%q];\n", fmt.Sprint(i), kindShapes[n.Kind()], nodeLabel(n))
	}
	edges := make([]string, 0, len(nodes))
	for i, n := range nodes {
		for _, consumer := range n.OutputNodes() {
			edges = append(edges, fmt.Sprintf("\t%q -> %q;\n", fmt.Sprint(i), fmt.Sprint(index[consumer])))
		}
	}
	sort.Strings(edges)
	for _, e := range edges {
		b.WriteString(e)
	}
	b.WriteString("}")
	return b.String()
}
