package assembly

import (
	"github.com/google/uuid"
)

// Generator builds the nodes and edges connecting the given raw-word
// sources to the given desired-word sinks. Generators are best-effort:
// a raw word missing from the source mapping leaves an inventory without
// a supplier, which the subsequent discovery reports as an incomplete
// graph. The five shipped strategies live in pkg/algorithms.
type Generator func(sources, sinks map[string]*Node) error

// System is a validated, closed set of nodes forming one or more complete
// assembly networks. A System exclusively owns its node set and never
// mutates nodes after construction. Instances are produced by Discover or
// Generate rather than built directly.
type System struct {
	runID string
	nodes map[*Node]struct{}
}

func newSystem(nodes map[*Node]struct{}) *System {
	return &System{
		runID: uuid.NewString(),
		nodes: nodes,
	}
}

// RunID returns the unique identifier assigned to this system when it was
// discovered, for correlating logs, metrics, and exports.
func (s *System) RunID() string {
	return s.runID
}

// Size returns the number of nodes in the system.
func (s *System) Size() int {
	return len(s.nodes)
}

// Nodes returns all nodes in the system. Order is unspecified.
func (s *System) Nodes() []*Node {
	nodes := make([]*Node, 0, len(s.nodes))
	for n := range s.nodes {
		nodes = append(nodes, n)
	}
	return nodes
}

// EdgeCount returns the number of directed edges in the system, counting
// each producer-to-consumer link once on the producer side.
func (s *System) EdgeCount() int {
	edges := 0
	for n := range s.nodes {
		edges += len(n.outputNodes)
	}
	return edges
}

// Contains reports whether the node belongs to the system.
func (s *System) Contains(n *Node) bool {
	_, ok := s.nodes[n]
	return ok
}

// NodesOfKind returns all nodes of the given kind. Order is unspecified.
func (s *System) NodesOfKind(k Kind) []*Node {
	nodes := make([]*Node, 0)
	for n := range s.nodes {
		if n.kind == k {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Sources returns all source nodes in the system.
func (s *System) Sources() []*Node { return s.NodesOfKind(KindSource) }

// Sinks returns all sink nodes in the system.
func (s *System) Sinks() []*Node { return s.NodesOfKind(KindSink) }

// Inventories returns all inventory nodes in the system.
func (s *System) Inventories() []*Node { return s.NodesOfKind(KindInventory) }

// Machines returns all machine nodes in the system.
func (s *System) Machines() []*Node { return s.NodesOfKind(KindMachine) }

// Generate builds a complete assembly network from scratch: one sink per
// desired output word, one source per distinct character occurring in the
// output words (atomic inputs are always single characters), wired by the
// given generator and validated by discovery.
func Generate(gen Generator, words ...string) (*System, error) {
	sinks := make(map[string]*Node, len(words))
	for _, w := range words {
		if _, ok := sinks[w]; !ok {
			sinks[w] = NewSink(w)
		}
	}

	sources := make(map[string]*Node)
	for _, w := range words {
		for i := 0; i < len(w); i++ {
			c := w[i : i+1]
			if _, ok := sources[c]; !ok {
				sources[c] = NewSource(c)
			}
		}
	}

	if err := gen(sources, sinks); err != nil {
		return nil, err
	}

	seeds := make([]*Node, 0, len(sources))
	for _, src := range sources {
		seeds = append(seeds, src)
	}
	return Discover(seeds)
}
