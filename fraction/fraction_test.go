package fraction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/psdkit/fraction"
	"github.com/katalvlaran/psdkit/psd"
)

// TestRoundTrip verifies the forward and inverse maps are exact algebraic
// inverses over the production value grid — checked, not assumed, because
// a historical defect paired mismatched formulas.
func TestRoundTrip(t *testing.T) {
	const bulkSG = 3.15
	masses := []float64{0.013, 0.032, 0.001, 0.0434, 0.046, 0.098}
	gravities := []float64{2.32, 2.74, 2.61}

	for _, sg := range gravities {
		for _, mass := range masses {
			volume, err := fraction.MassToVolume(mass, sg, bulkSG)
			require.NoError(t, err)
			back, err := fraction.VolumeToMass(volume, sg, bulkSG)
			require.NoError(t, err)
			assert.InDelta(t, mass, back, 1e-9, "mass=%g sg=%g", mass, sg)
		}
	}
}

// TestMassToVolume_KnownValue pins the conversion formula itself.
func TestMassToVolume_KnownValue(t *testing.T) {
	// volume = mass / componentSG × bulkSG
	v, err := fraction.MassToVolume(0.046, 2.32, 3.15)
	require.NoError(t, err)
	assert.InDelta(t, 0.046/2.32*3.15, v, 1e-15)

	m, err := fraction.VolumeToMass(v, 2.32, 3.15)
	require.NoError(t, err)
	assert.InDelta(t, 0.046, m, 1e-15)
}

// TestInvalidArguments rejects out-of-domain scalars in both directions;
// zero fractions pass.
func TestInvalidArguments(t *testing.T) {
	_, err := fraction.MassToVolume(-0.01, 2.32, 3.15)
	assert.ErrorIs(t, err, psd.ErrInvalidParameter, "negative fraction")

	_, err = fraction.MassToVolume(0.05, 0, 3.15)
	assert.ErrorIs(t, err, psd.ErrInvalidParameter, "zero component sg")

	_, err = fraction.MassToVolume(0.05, -2.3, 3.15)
	assert.ErrorIs(t, err, psd.ErrInvalidParameter, "negative component sg")

	_, err = fraction.VolumeToMass(0.05, 2.32, 0)
	assert.ErrorIs(t, err, psd.ErrInvalidParameter, "zero bulk sg")

	zero, err := fraction.MassToVolume(0, 2.32, 3.15)
	assert.NoError(t, err, "zero fraction is a valid input")
	assert.Zero(t, zero)
}

// TestSet_Conversion converts a gypsum-phase set both ways and round-trips.
func TestSet_Conversion(t *testing.T) {
	const bulkSG = 3.15
	set := fraction.Set{
		{Name: "dihydrate", SpecificGravity: 2.32, Fraction: 0.046},
		{Name: "hemihydrate", SpecificGravity: 2.74, Fraction: 0.013},
		{Name: "anhydrite", SpecificGravity: 2.61, Fraction: 0.032},
	}

	volumes, err := set.ToVolume(bulkSG)
	require.NoError(t, err)
	require.Len(t, volumes, len(set))
	assert.Equal(t, "dihydrate", volumes[0].Name, "names survive conversion")
	assert.InDelta(t, 0.046/2.32*3.15, volumes[0].Fraction, 1e-15)

	back, err := volumes.ToMass(bulkSG)
	require.NoError(t, err)
	for i := range set {
		assert.InDelta(t, set[i].Fraction, back[i].Fraction, 1e-9, "component %s", set[i].Name)
	}

	// The original set is untouched: conversions return copies.
	assert.Equal(t, 0.046, set[0].Fraction)
}

// TestSet_ErrorTagging names the offending component.
func TestSet_ErrorTagging(t *testing.T) {
	set := fraction.Set{
		{Name: "dihydrate", SpecificGravity: 2.32, Fraction: 0.046},
		{Name: "bogus", SpecificGravity: -1, Fraction: 0.013},
	}
	converted, err := set.ToVolume(3.15)
	assert.ErrorIs(t, err, psd.ErrInvalidParameter)
	assert.ErrorContains(t, err, "bogus")
	assert.Nil(t, converted, "no partial result on failure")
}
