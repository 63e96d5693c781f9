package algorithms

import (
	"github.com/dd0wney/wordmill/pkg/assembly"
)

// Linear builds one private machine chain per output word, always
// splitting off the first character. No intermediate product is shared
// between sinks; a word of length n yields a chain of n-1 machines.
func Linear(sources, sinks map[string]*assembly.Node) error {
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

		left, right, err := assembly.SplitWord(inv.Word(), 1)
		if err != nil {
			return err
		}
		m := assembly.NewMachine(left, right)
		wr.wire(m, inv)

		invLeft := assembly.NewInventory(left)
		if src, ok := sources[left]; ok {
			wr.wire(src, invLeft)
		}
		wr.wire(invLeft, m)

		invRight := assembly.NewInventory(right)
		wr.wire(invRight, m)
		if src, ok := sources[right]; ok {
			wr.wire(src, invRight)
		} else {
			toSupply = append(toSupply, invRight)
		}
	}
	return wr.err
}
