package assembly

// Discover computes the transitive closure of the neighbor relation
// starting from the seed nodes, then verifies that every discovered node
// is fully connected. Passing either the full set of sources or the full
// set of sinks is the easiest way to cover all components of a network.
//
// The traversal order is unspecified and does not affect the result set.
// Discovery fails with ErrIncompleteGraph, naming one offending node, if
// any discovered node lacks required inbound coverage or outbound edges.
func Discover(seeds []*Node) (*System, error) {
	untreated := make(map[*Node]struct{}, len(seeds))
	for _, n := range seeds {
		untreated[n] = struct{}{}
	}

	discovered := make(map[*Node]struct{})
	for len(untreated) > 0 {
		var n *Node
		for m := range untreated {
			n = m
			break
		}
		delete(untreated, n)
		discovered[n] = struct{}{}
		for _, m := range n.Neighbors() {
			if _, ok := discovered[m]; !ok {
				untreated[m] = struct{}{}
			}
		}
	}

	for n := range discovered {
		if !n.FullyConnected() {
			return nil, &AssemblyError{Op: "Discover", Kind: n.kind, Word: n.Word(), Cause: ErrIncompleteGraph}
		}
	}

	return newSystem(discovered), nil
}
