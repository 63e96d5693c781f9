package algorithms

import (
	"github.com/dd0wney/wordmill/pkg/assembly"
)

// splitPair keys a machine by its ordered input words.
type splitPair struct {
	left  string
	right string
}

// BioInspired builds a maximally shared network: a single inventory per
// distinct word, fed through every possible decomposition. For each
// composite word, one machine is created per split position 1..len-1, all
// producing into the same shared inventory; sub-word inventories are
// shared by every machine that consumes them. The result is a DAG with
// parallel alternative producers, resembling metabolic reuse networks.
func BioInspired(sources, sinks map[string]*assembly.Node) error {
	var wr wirer

	invByWord := make(map[string]*assembly.Node)
	machByPair := make(map[splitPair]*assembly.Node)

	toSupply := make([]*assembly.Node, 0, len(sinks))
	for word, sink := range sinks {
		inv := assembly.NewInventory(word)
		wr.wire(inv, sink)
		toSupply = append(toSupply, inv)
		invByWord[word] = inv
	}

	for len(toSupply) > 0 {
		if wr.err != nil {
			return wr.err
		}
		inv := toSupply[len(toSupply)-1]
		toSupply = toSupply[:len(toSupply)-1]

		if wr.supplyFromSource(sources, inv) {
			continue
		}
		word := inv.Word()
		for i := 1; i < len(word); i++ {
			left, right, err := assembly.SplitWord(word, i)
			if err != nil {
				return err
			}
			pair := splitPair{left, right}
			m, ok := machByPair[pair]
			if !ok {
				m = assembly.NewMachine(left, right)
				machByPair[pair] = m
			}
			wr.wire(m, inv)

			invLeft, ok := invByWord[left]
			if !ok {
				invLeft = assembly.NewInventory(left)
				toSupply = append(toSupply, invLeft)
				invByWord[left] = invLeft
			}
			wr.wire(invLeft, m)

			invRight, ok := invByWord[right]
			if !ok {
				invRight = assembly.NewInventory(right)
				toSupply = append(toSupply, invRight)
				invByWord[right] = invRight
			}
			wr.wire(invRight, m)
		}
	}
	return wr.err
}
