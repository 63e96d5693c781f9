package algorithms

import (
	"testing"
)

// TestComponent_BalancedTree verifies the literal topology for output
// "abcd": Machine(a,b)->Inv(ab), Machine(c,d)->Inv(cd),
// Machine(ab,cd)->Inv(abcd), leaves fed by matching sources
func TestComponent_BalancedTree(t *testing.T) {
	sys := mustGenerate(t, Component, "abcd")

	assertMachinePairs(t, sys,
		[2]string{"ab", "cd"},
		[2]string{"a", "b"},
		[2]string{"c", "d"},
	)

	invRoot := singleInventory(t, sys, "abcd")
	ins := invRoot.InputNodes()
	if len(ins) != 1 || ins[0].Word() != "abcd" {
		t.Error("Inv(abcd) should be fed by Machine(ab,cd)")
	}
	for _, leaf := range []string{"a", "b", "c", "d"} {
		inv := singleInventory(t, sys, leaf)
		producers := inv.InputNodes()
		if len(producers) != 1 {
			t.Errorf("Leaf inventory %q should have one producer", leaf)
		}
	}
}

// TestComponent_FloorMidpoint splits odd-length words with the shorter
// half on the left: floor(5/2) = 2, never 3
func TestComponent_FloorMidpoint(t *testing.T) {
	sys := mustGenerate(t, Component, "abcde")

	assertMachinePairs(t, sys,
		[2]string{"ab", "cde"},
		[2]string{"a", "b"},
		[2]string{"c", "de"},
		[2]string{"d", "e"},
	)
}

// TestComponent_SingleCharOutput wires the source straight through
func TestComponent_SingleCharOutput(t *testing.T) {
	sys := mustGenerate(t, Component, "a")
	if sys.Size() != 3 {
		t.Errorf("Expected Source-Inv-Sink, got %d nodes", sys.Size())
	}
	if len(sys.Machines()) != 0 {
		t.Error("A raw output word needs no machines")
	}
}

// TestComponent_NoReuse builds a private subtree per sink
func TestComponent_NoReuse(t *testing.T) {
	sys := mustGenerate(t, Component, "ab", "abc")

	byWord := inventoriesByWord(sys)
	// "ab" splits (a,b); "abc" splits (a,bc) then (b,c): separate
	// inventories for the shared characters.
	if got := len(byWord["a"]); got != 2 {
		t.Errorf("Expected 2 private inventories for a, got %d", got)
	}
	if got := len(byWord["b"]); got != 2 {
		t.Errorf("Expected 2 private inventories for b, got %d", got)
	}
}
