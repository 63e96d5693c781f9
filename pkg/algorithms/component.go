package algorithms

import (
	"github.com/dd0wney/wordmill/pkg/assembly"
)

// Component builds one private balanced binary tree of machines per
// output word, recursively splitting every composite word at the midpoint
// floor(len/2). For odd lengths the left half is the shorter one; the
// asymmetry is part of the strategy's contract.
func Component(sources, sinks map[string]*assembly.Node) error {
	var wr wirer

	toSupply := make([]*assembly.Node, 0, len(sinks))
	for word, sink := range sinks {
		inv := assembly.NewInventory(word)
		wr.wire(inv, sink)
		toSupply = append(toSupply, inv)
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
		left, right, err := assembly.SplitWord(word, len(word)/2)
		if err != nil {
			return err
		}
		m := assembly.NewMachine(left, right)
		wr.wire(m, inv)

		invLeft := assembly.NewInventory(left)
		wr.wire(invLeft, m)
		invRight := assembly.NewInventory(right)
		wr.wire(invRight, m)
		toSupply = append(toSupply, invLeft, invRight)
	}
	return wr.err
}
