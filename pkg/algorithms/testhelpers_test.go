package algorithms

import (
	"testing"

	"github.com/dd0wney/wordmill/pkg/assembly"
)

// mustGenerate builds and validates a network, failing the test on error
func mustGenerate(t *testing.T, gen assembly.Generator, words ...string) *assembly.System {
	t.Helper()
	sys, err := assembly.Generate(gen, words...)
	if err != nil {
		t.Fatalf("Generate(%v) failed: %v", words, err)
	}
	return sys
}

// inventoriesByWord groups the system's inventories by their word
func inventoriesByWord(sys *assembly.System) map[string][]*assembly.Node {
	byWord := make(map[string][]*assembly.Node)
	for _, inv := range sys.Inventories() {
		byWord[inv.Word()] = append(byWord[inv.Word()], inv)
	}
	return byWord
}

// machinesByInputs groups the system's machines by their ordered input pair
func machinesByInputs(sys *assembly.System) map[[2]string][]*assembly.Node {
	byPair := make(map[[2]string][]*assembly.Node)
	for _, m := range sys.Machines() {
		in := m.Inputs()
		key := [2]string{in[0], in[1]}
		byPair[key] = append(byPair[key], m)
	}
	return byPair
}

// assertMachinePairs fails unless the system's machine input pairs are
// exactly the expected set, one machine each
func assertMachinePairs(t *testing.T, sys *assembly.System, pairs ...[2]string) {
	t.Helper()
	byPair := machinesByInputs(sys)
	for _, pair := range pairs {
		if got := len(byPair[pair]); got != 1 {
			t.Errorf("Expected 1 machine for %v, got %d", pair, got)
		}
	}
	if len(sys.Machines()) != len(pairs) {
		t.Errorf("Expected %d machines, got %d", len(pairs), len(sys.Machines()))
	}
}

// singleInventory returns the unique inventory for a word, failing if it
// is absent or duplicated
func singleInventory(t *testing.T, sys *assembly.System, word string) *assembly.Node {
	t.Helper()
	invs := inventoriesByWord(sys)[word]
	if len(invs) != 1 {
		t.Fatalf("Expected exactly 1 inventory for %q, got %d", word, len(invs))
	}
	return invs[0]
}
