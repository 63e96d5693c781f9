// Package algorithms provides the generation strategies that synthesize a
// complete assembly network from a set of desired output words and a set
// of raw-input sources.
//
// All generators share the assembly.Generator contract: they receive a
// mapping from raw word to source node and a mapping from desired word to
// sink node, and wire up the inventories and machines connecting them.
// Each strategy applies a distinct split policy (where composite words are
// cut) and reuse policy (whether intermediate inventories are shared
// between consumers):
//
//   - Linear: split off the first character, no reuse.
//   - Component: split at the midpoint, no reuse.
//   - BioInspired: every split position, global reuse.
//   - ProductFocusedTeam: every split position, reuse scoped to one
//     top-level split ("team").
//   - LateDifferentiation: split around a shared pool of standard words.
//
// Generators are best-effort: validity of the resulting graph is only
// confirmed by the discovery pass that follows generation.
package algorithms

import (
	"github.com/dd0wney/wordmill/pkg/assembly"
)

// wirer forms edges with a sticky error, so the construction loops stay
// readable. After the first failure all further calls are no-ops.
type wirer struct {
	err error
}

func (w *wirer) wire(producer, consumer *assembly.Node) {
	if w.err != nil {
		return
	}
	w.err = assembly.FormEdge(producer, consumer)
}

// supplyFromSource wires a matching source into the inventory if one
// exists. Inventories left without a supplier are reported by discovery,
// not here.
func (w *wirer) supplyFromSource(sources map[string]*assembly.Node, inv *assembly.Node) bool {
	src, ok := sources[inv.Word()]
	if !ok {
		return false
	}
	w.wire(src, inv)
	return true
}
