package fraction

import "fmt"

// Component is one named mineral/chemical phase of a composition, with
// its specific gravity and its fraction on whichever basis (mass or
// volume) the Set currently carries.
type Component struct {
	Name            string
	SpecificGravity float64
	Fraction        float64
}

// Set is a fixed, named list of components (typically 3–6 phases, e.g.
// the gypsum forms of a cement). Fractions are not required to sum to 1.
type Set []Component

// ToVolume converts a mass-basis Set to volume basis against bulkSG,
// returning a converted copy. Errors are tagged with the offending
// component's name.
func (s Set) ToVolume(bulkSG float64) (Set, error) {
	return s.convert(bulkSG, MassToVolume)
}

// ToMass converts a volume-basis Set to mass basis against bulkSG,
// returning a converted copy.
func (s Set) ToMass(bulkSG float64) (Set, error) {
	return s.convert(bulkSG, VolumeToMass)
}

func (s Set) convert(bulkSG float64, f func(frac, sg, bulk float64) (float64, error)) (Set, error) {
	out := make(Set, len(s))
	for i, c := range s {
		converted, err := f(c.Fraction, c.SpecificGravity, bulkSG)
		if err != nil {
			return nil, fmt.Errorf("fraction: component %q: %w", c.Name, err)
		}
		c.Fraction = converted
		out[i] = c
	}
	return out, nil
}
