package algorithms

import (
	"fmt"

	"github.com/dd0wney/wordmill/pkg/assembly"
)

// Algorithm names accepted by ByName.
const (
	NameLinear              = "linear"
	NameComponent           = "component"
	NameBioInspired         = "bio-inspired"
	NameProductFocusedTeam  = "product-team"
	NameLateDifferentiation = "late-differentiation"
)

// Names returns the names of all shipped generation strategies.
func Names() []string {
	return []string{
		NameLinear,
		NameComponent,
		NameBioInspired,
		NameProductFocusedTeam,
		NameLateDifferentiation,
	}
}

// ByName resolves an algorithm name to its generator. The standardWords
// argument is only consulted by late differentiation and must be non-empty
// for it.
func ByName(name string, standardWords []string) (assembly.Generator, error) {
	switch name {
	case NameLinear:
		return Linear, nil
	case NameComponent:
		return Component, nil
	case NameBioInspired:
		return BioInspired, nil
	case NameProductFocusedTeam:
		return ProductFocusedTeam, nil
	case NameLateDifferentiation:
		if len(standardWords) == 0 {
			return nil, fmt.Errorf("algorithm %q requires a non-empty standard word set", name)
		}
		return LateDifferentiation(standardWords), nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", name)
	}
}
