package algorithms

import (
	"strings"

	"github.com/dd0wney/wordmill/pkg/assembly"
)

// LateDifferentiation returns a generator that synthesizes every composite
// word around a fixed pool of standard words. For a target word it finds
// the longest standard word occurring as a proper substring, splits the
// target into head/standard/tail, and combines the parts with at most two
// machines; when the head or tail is empty the corresponding machine is
// skipped. Standard-word inventories are created once and shared across
// all consumers; all other intermediates are rebuilt per occurrence. When
// no standard word matches, the target falls back to a first-character
// split as in Linear.
//
// If several standard words of equal maximal length occur in a target, the
// first one in standardWords wins.
func LateDifferentiation(standardWords []string) assembly.Generator {
	return func(sources, sinks map[string]*assembly.Node) error {
		var wr wirer

		standard := make(map[string]struct{}, len(standardWords))
		for _, w := range standardWords {
			standard[w] = struct{}{}
		}

		stdInvs := make(map[string]*assembly.Node)
		var toSupply []*assembly.Node

		// Standard inventories are supplied like any other inventory,
		// so creating one also schedules it.
		stdInv := func(w string) *assembly.Node {
			inv, ok := stdInvs[w]
			if !ok {
				inv = assembly.NewInventory(w)
				toSupply = append(toSupply, inv)
				stdInvs[w] = inv
			}
			return inv
		}

		longestStandardIn := func(w string) (string, bool) {
			best, found := "", false
			for _, c := range standardWords {
				if c != w && strings.Contains(w, c) && (!found || len(c) > len(best)) {
					best, found = c, true
				}
			}
			return best, found
		}

		for word, sink := range sinks {
			var inv *assembly.Node
			if _, ok := standard[word]; ok {
				inv = stdInv(word)
			} else {
				inv = assembly.NewInventory(word)
				toSupply = append(toSupply, inv)
			}
			wr.wire(inv, sink)
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

			wst, ok := longestStandardIn(word)
			if !ok {
				left, right, err := assembly.SplitWord(word, 1)
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
				continue
			}

			idx := strings.Index(word, wst)
			head := word[:idx]
			tail := word[idx+len(wst):]

			var invHead, invTail *assembly.Node
			if head != "" {
				if _, ok := standard[head]; ok {
					invHead = stdInv(head)
				} else {
					invHead = assembly.NewInventory(head)
					toSupply = append(toSupply, invHead)
				}
			}
			if tail != "" {
				if _, ok := standard[tail]; ok {
					invTail = stdInv(tail)
				} else {
					invTail = assembly.NewInventory(tail)
					toSupply = append(toSupply, invTail)
				}
			}

			switch {
			case head != "" && tail != "":
				// head+standard first, then attach the tail.
				interInv := assembly.NewInventory(head + wst)
				m1 := assembly.NewMachine(head, wst)
				wr.wire(m1, interInv)
				wr.wire(invHead, m1)
				wr.wire(stdInv(wst), m1)
				m2 := assembly.NewMachine(head+wst, tail)
				wr.wire(interInv, m2)
				wr.wire(invTail, m2)
				wr.wire(m2, inv)
			case head != "":
				m := assembly.NewMachine(head, wst)
				wr.wire(m, inv)
				wr.wire(stdInv(wst), m)
				wr.wire(invHead, m)
			default:
				m := assembly.NewMachine(wst, tail)
				wr.wire(m, inv)
				wr.wire(stdInv(wst), m)
				wr.wire(invTail, m)
			}
		}
		return wr.err
	}
}
