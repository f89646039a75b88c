package fraction

import (
	"fmt"
	"math"

	"github.com/katalvlaran/psdkit/psd"
)

// MassToVolume converts a component's mass fraction to a volume fraction
// given the component's specific gravity and the reference bulk specific
// gravity: volume = mass / componentSG × bulkSG.
func MassToVolume(massFraction, componentSG, bulkSG float64) (float64, error) {
	if err := checkArgs(massFraction, componentSG, bulkSG); err != nil {
		return 0, err
	}
	return massFraction / componentSG * bulkSG, nil
}

// VolumeToMass converts a component's volume fraction to a mass fraction:
// mass = volume / bulkSG × componentSG. Exact inverse of MassToVolume.
func VolumeToMass(volumeFraction, componentSG, bulkSG float64) (float64, error) {
	if err := checkArgs(volumeFraction, componentSG, bulkSG); err != nil {
		return 0, err
	}
	return volumeFraction / bulkSG * componentSG, nil
}

// checkArgs rejects out-of-domain scalars before any arithmetic runs.
// Zero fractions are allowed; negative fractions, non-finite values and
// non-positive specific gravities are not.
func checkArgs(frac, componentSG, bulkSG float64) error {
	if frac < 0 || math.IsNaN(frac) || math.IsInf(frac, 0) {
		return fmt.Errorf("fraction: fraction must be ≥ 0 and finite, got %g: %w", frac, psd.ErrInvalidParameter)
	}
	if !(componentSG > 0) || math.IsInf(componentSG, 1) {
		return fmt.Errorf("fraction: component specific gravity must be positive and finite, got %g: %w", componentSG, psd.ErrInvalidParameter)
	}
	if !(bulkSG > 0) || math.IsInf(bulkSG, 1) {
		return fmt.Errorf("fraction: bulk specific gravity must be positive and finite, got %g: %w", bulkSG, psd.ErrInvalidParameter)
	}
	return nil
}
