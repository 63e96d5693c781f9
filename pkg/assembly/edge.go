package assembly

import "fmt"

// sharesProduct reports whether the producer provides at least one word
// the consumer requires.
func sharesProduct(producer, consumer *Node) bool {
	for _, out := range producer.outputs {
		for _, in := range consumer.inputs {
			if out == in {
				return true
			}
		}
	}
	return false
}

// FormOutboundEdge registers other as a consumer of n's output. It fails
// if the two nodes share no product word or if other's kind is not among
// the kinds n may feed.
func (n *Node) FormOutboundEdge(other *Node) error {
	if !sharesProduct(n, other) {
		return &AssemblyError{Op: "FormOutboundEdge", Kind: n.kind, Word: n.Word(), Cause: ErrProductMismatch}
	}
	if !kindAllowed(allowedOutputKinds[n.kind], other.kind) {
		return &AssemblyError{Op: "FormOutboundEdge", Kind: n.kind, Word: n.Word(), Cause: ErrKindViolation}
	}
	n.outputNodes = append(n.outputNodes, other)
	return nil
}

// FormInboundEdge registers other as a producer of one of n's inputs. It
// fails if the two nodes share no product word or if other's kind is not
// among the kinds n may be fed by.
func (n *Node) FormInboundEdge(other *Node) error {
	if !sharesProduct(other, n) {
		return &AssemblyError{Op: "FormInboundEdge", Kind: n.kind, Word: n.Word(), Cause: ErrProductMismatch}
	}
	if !kindAllowed(allowedInputKinds[n.kind], other.kind) {
		return &AssemblyError{Op: "FormInboundEdge", Kind: n.kind, Word: n.Word(), Cause: ErrKindViolation}
	}
	n.inputNodes = append(n.inputNodes, other)
	return nil
}

// FormEdge registers an edge with both the producer and the consumer. The
// edge only exists once both sides record it; a divergence (one side wired
// without the other) is later caught by discovery as an incomplete graph.
// Validation of the shared product and of the node kinds happens in the
// per-side calls.
func FormEdge(producer, consumer *Node) error {
	if err := producer.FormOutboundEdge(consumer); err != nil {
		return err
	}
	return consumer.FormInboundEdge(producer)
}

// SplitWord splits a word at position pos, returning both substrings. The
// length of the first substring is pos characters. Both substrings must be
// non-empty, so pos must lie in [1, len(word)-1].
func SplitWord(word string, pos int) (string, string, error) {
	if pos < 1 || pos > len(word)-1 {
		return "", "", fmt.Errorf("split %q at %d: %w", word, pos, ErrInvalidSplitPosition)
	}
	return word[:pos], word[pos:], nil
}
