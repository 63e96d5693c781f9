package algorithms

import (
	"github.com/dd0wney/wordmill/pkg/assembly"
)

// team is one top-level split outcome: the pair of inventories feeding the
// machine chosen for that split. Each team rebuilds its own sub-products.
type team struct {
	left  *assembly.Node
	right *assembly.Node
}

// ProductFocusedTeam explores every split position of each output word at
// the top level, creating one candidate machine per position, all feeding
// the single final inventory. Each resulting (left, right) pair then forms
// an independent "team" that builds its two halves with the same
// all-positions exploration, reusing inventories only within the team.
// Different teams (and different sinks) never share intermediates.
func ProductFocusedTeam(sources, sinks map[string]*assembly.Node) error {
	var wr wirer

	teams := make([]team, 0)
	for word, sink := range sinks {
		inv := assembly.NewInventory(word)
		wr.wire(inv, sink)
		for i := 1; i < len(word); i++ {
			left, right, err := assembly.SplitWord(word, i)
			if err != nil {
				return err
			}
			m := assembly.NewMachine(left, right)
			wr.wire(m, inv)

			invLeft := assembly.NewInventory(left)
			invRight := assembly.NewInventory(right)
			wr.wire(invLeft, m)
			wr.wire(invRight, m)
			teams = append(teams, team{left: invLeft, right: invRight})
		}
	}

	for _, tm := range teams {
		invByWord := map[string]*assembly.Node{
			tm.left.Word():  tm.left,
			tm.right.Word(): tm.right,
		}
		toSupply := []*assembly.Node{tm.left, tm.right}

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
				// One machine per consumer and position; parallel
				// producers with equal output words are valid.
				m := assembly.NewMachine(left, right)
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
	}
	return wr.err
}
