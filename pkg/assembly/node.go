package assembly

// Node is one element of an assembly network. A node declares the product
// words it requires (inputs) and the product words it provides (outputs),
// and records the neighbor nodes wired to either side. Neighbor lists are
// append-only; duplicates represent parallel edges for distinct flows.
type Node struct {
	kind        Kind
	inputs      []string
	outputs     []string
	inputNodes  []*Node
	outputNodes []*Node
}

// NewSource creates an external supplier of the given raw word.
// A source has no inputs.
func NewSource(word string) *Node {
	return &Node{
		kind:    KindSource,
		outputs: []string{word},
	}
}

// NewSink creates an external consumer of the given final word.
// A sink has no outputs.
func NewSink(word string) *Node {
	return &Node{
		kind:   KindSink,
		inputs: []string{word},
	}
}

// NewInventory creates a holding buffer for the given word. The word acts
// as both the required input and the provided output.
func NewInventory(word string) *Node {
	return &Node{
		kind:    KindInventory,
		inputs:  []string{word},
		outputs: []string{word},
	}
}

// NewMachine creates a combiner that consumes left and right (in that
// order) and produces their concatenation.
func NewMachine(left, right string) *Node {
	return &Node{
		kind:    KindMachine,
		inputs:  []string{left, right},
		outputs: []string{left + right},
	}
}

// Kind returns the node's kind.
func (n *Node) Kind() Kind {
	return n.kind
}

// Inputs returns a copy of the words this node must receive.
func (n *Node) Inputs() []string {
	return append([]string(nil), n.inputs...)
}

// Outputs returns a copy of the words this node provides.
func (n *Node) Outputs() []string {
	return append([]string(nil), n.outputs...)
}

// InputNodes returns a copy of the list of producers wired to this node.
func (n *Node) InputNodes() []*Node {
	return append([]*Node(nil), n.inputNodes...)
}

// OutputNodes returns a copy of the list of consumers wired to this node.
func (n *Node) OutputNodes() []*Node {
	return append([]*Node(nil), n.outputNodes...)
}

// Word returns the single product word this node deals in. For a sink this
// is its input word (a sink has no outputs to draw from); for every other
// kind it is the output word. A machine's word is the concatenation of its
// two input words.
func (n *Node) Word() string {
	if n.kind == KindSink {
		return n.inputs[0]
	}
	return n.outputs[0]
}

// Neighbors returns the deduplicated union of input and output neighbors.
// The order of the returned slice is unspecified.
func (n *Node) Neighbors() []*Node {
	seen := make(map[*Node]struct{}, len(n.inputNodes)+len(n.outputNodes))
	neighbors := make([]*Node, 0, len(n.inputNodes)+len(n.outputNodes))
	for _, m := range n.inputNodes {
		if _, ok := seen[m]; !ok {
			seen[m] = struct{}{}
			neighbors = append(neighbors, m)
		}
	}
	for _, m := range n.outputNodes {
		if _, ok := seen[m]; !ok {
			seen[m] = struct{}{}
			neighbors = append(neighbors, m)
		}
	}
	return neighbors
}

// FullyConnected reports whether the node is wired such that every
// required input can be provided and every produced output consumed.
// Inbound edges must cover the full input word set; outbound edges are
// only checked by count.
func (n *Node) FullyConnected() bool {
	if len(n.inputNodes) < len(n.inputs) {
		return false
	}
	supplied := make(map[string]struct{}, len(n.inputNodes))
	for _, p := range n.inputNodes {
		supplied[p.Word()] = struct{}{}
	}
	for _, w := range n.inputs {
		if _, ok := supplied[w]; !ok {
			return false
		}
	}
	return len(n.outputNodes) >= len(n.outputs)
}
