package assembly

// Kind identifies the role a node plays in an assembly network.
// The set of kinds is closed: edge permissions are looked up in static
// tables instead of inspecting types at runtime.
type Kind uint8

const (
	// KindSource is an external supplier of one raw product word.
	KindSource Kind = iota
	// KindSink is an external consumer of one final product word.
	KindSink
	// KindInventory is a holding buffer for exactly one product word.
	KindInventory
	// KindMachine combines two ordered input words into their concatenation.
	KindMachine
)

// String returns the string representation of a node kind.
func (k Kind) String() string {
	switch k {
	case KindSource:
		return "Source"
	case KindSink:
		return "Sink"
	case KindInventory:
		return "Inventory"
	case KindMachine:
		return "Machine"
	default:
		return "Unknown"
	}
}

// The bipartite alternation: Source/Sink only ever touch Inventory,
// Inventory touches Source/Sink/Machine, Machine only touches Inventory.
var allowedInputKinds = map[Kind][]Kind{
	KindSource:    {},
	KindSink:      {KindInventory},
	KindInventory: {KindSource, KindMachine},
	KindMachine:   {KindInventory},
}

var allowedOutputKinds = map[Kind][]Kind{
	KindSource:    {KindInventory},
	KindSink:      {},
	KindInventory: {KindSink, KindMachine},
	KindMachine:   {KindInventory},
}

func kindAllowed(allowed []Kind, k Kind) bool {
	for _, a := range allowed {
		if a == k {
			return true
		}
	}
	return false
}
