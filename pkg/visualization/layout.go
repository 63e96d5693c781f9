package visualization

import (
	"sort"

	"github.com/dd0wney/wordmill/pkg/assembly"
)

// Position represents a 2D coordinate
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LayoutConfig configures layout parameters
type LayoutConfig struct {
	Width   float64 // Canvas width
	Height  float64 // Canvas height
	Padding float64 // Padding from edges
}

// Layout computes 2D positions for every node of an assembly system.
type Layout interface {
	ComputeLayout(sys *assembly.System) map[*assembly.Node]Position
}

// FlowLayout arranges nodes in production order: sources on the first
// level, every other node one level below its deepest producer, sinks at
// the bottom. Within a level, nodes are ordered by word for stability.
type FlowLayout struct {
	config *LayoutConfig
}

// NewFlowLayout creates a flow layout for the given canvas.
func NewFlowLayout(config *LayoutConfig) *FlowLayout {
	if config.Padding == 0 {
		config.Padding = 50
	}
	return &FlowLayout{config: config}
}

// ComputeLayout assigns a position to every node of the system.
func (fl *FlowLayout) ComputeLayout(sys *assembly.System) map[*assembly.Node]Position {
	positions := make(map[*assembly.Node]Position)
	nodes := sys.Nodes()
	if len(nodes) == 0 {
		return positions
	}

	// Roots are the nodes with no producers, normally the sources.
	level := make(map[*assembly.Node]int, len(nodes))
	current := make([]*assembly.Node, 0)
	for _, n := range nodes {
		if len(n.InputNodes()) == 0 {
			level[n] = 0
			current = append(current, n)
		}
	}
	if len(current) == 0 {
		level[nodes[0]] = 0
		current = append(current, nodes[0])
	}

	// Push each consumer one level below its deepest producer. The graph
	// is a DAG, so this terminates.
	for len(current) > 0 {
		next := make([]*assembly.Node, 0)
		for _, n := range current {
			for _, consumer := range n.OutputNodes() {
				if d, ok := level[consumer]; !ok || d < level[n]+1 {
					level[consumer] = level[n] + 1
					next = append(next, consumer)
				}
			}
		}
		current = next
	}

	maxLevel := 0
	for _, d := range level {
		if d > maxLevel {
			maxLevel = d
		}
	}
	// Anything unreached (possible on a hand-built partial graph) lands
	// on the last level.
	for _, n := range nodes {
		if _, ok := level[n]; !ok {
			level[n] = maxLevel
		}
	}

	levels := make([][]*assembly.Node, maxLevel+1)
	for _, n := range nodes {
		levels[level[n]] = append(levels[level[n]], n)
	}
	for _, row := range levels {
		sort.Slice(row, func(i, j int) bool { return row[i].Word() < row[j].Word() })
	}

	cfg := fl.config
	levelHeight := (cfg.Height - 2*cfg.Padding) / float64(len(levels))
	for levelIdx, row := range levels {
		y := cfg.Padding + float64(levelIdx)*levelHeight + levelHeight/2
		spacing := (cfg.Width - 2*cfg.Padding) / float64(len(row)+1)
		for nodeIdx, n := range row {
			positions[n] = Position{
				X: cfg.Padding + spacing*float64(nodeIdx+1),
				Y: y,
			}
		}
	}
	return positions
}
