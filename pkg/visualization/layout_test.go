package visualization

import (
	"testing"

	"github.com/dd0wney/wordmill/pkg/algorithms"
	"github.com/dd0wney/wordmill/pkg/assembly"
)

func layoutTestSystem(t *testing.T) *assembly.System {
	t.Helper()
	sys, err := assembly.Generate(algorithms.Component, "abcd")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return sys
}

// TestFlowLayout_AllNodesPositioned assigns every node a position inside
// the canvas
func TestFlowLayout_AllNodesPositioned(t *testing.T) {
	sys := layoutTestSystem(t)

	layout := NewFlowLayout(&LayoutConfig{Width: 800, Height: 600, Padding: 40})
	positions := layout.ComputeLayout(sys)

	if len(positions) != sys.Size() {
		t.Fatalf("Expected %d positions, got %d", sys.Size(), len(positions))
	}
	for n, pos := range positions {
		if pos.X < 40 || pos.X > 760 || pos.Y < 40 || pos.Y > 560 {
			t.Errorf("Node %s(%s) at (%f, %f) is outside the padded canvas",
				n.Kind(), n.Word(), pos.X, pos.Y)
		}
	}
}

// TestFlowLayout_ProductionOrder places sources above the nodes they
// supply and sinks at the bottom
func TestFlowLayout_ProductionOrder(t *testing.T) {
	sys := layoutTestSystem(t)

	layout := NewFlowLayout(&LayoutConfig{Width: 800, Height: 600})
	positions := layout.ComputeLayout(sys)

	var sourceY, sinkY float64
	for _, src := range sys.Sources() {
		sourceY = positions[src].Y
	}
	for _, sink := range sys.Sinks() {
		sinkY = positions[sink].Y
	}
	if sourceY >= sinkY {
		t.Errorf("Sources (y=%f) should sit above sinks (y=%f)", sourceY, sinkY)
	}

	// Every consumer sits strictly below all of its producers.
	for _, n := range sys.Nodes() {
		for _, consumer := range n.OutputNodes() {
			if positions[consumer].Y <= positions[n].Y {
				t.Errorf("%s(%s) should sit below its producer %s(%s)",
					consumer.Kind(), consumer.Word(), n.Kind(), n.Word())
			}
		}
	}
}

// TestFlowLayout_Empty handles a system with no nodes
func TestFlowLayout_Empty(t *testing.T) {
	sys, err := assembly.Discover(nil)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	layout := NewFlowLayout(&LayoutConfig{Width: 100, Height: 100})
	if got := layout.ComputeLayout(sys); len(got) != 0 {
		t.Errorf("Expected no positions, got %d", len(got))
	}
}
