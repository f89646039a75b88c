// Package fraction converts scalar composition fractions between mass
// and volume bases for mineral/chemical components.
//
// The forward and inverse maps are exact algebraic inverses:
//
//	volume = mass   / componentSG × bulkSG
//	mass   = volume / bulkSG      × componentSG
//
// so VolumeToMass(MassToVolume(x, sg, bulk), sg, bulk) == x to within
// 1e-9 absolute for every valid input — a contract the tests verify
// rather than assume, because a mismatched forward/inverse pair is a
// silent way to drift a mix design.
//
// Fractions need not sum to 1 across a component Set: unreacted or minor
// phases may leave headroom. The bulk specific gravity is a per-call
// scalar, never stored — a fraction editor that lets the user re-derive
// it owns that derivation.
//
// Pure, stateless, zero allocations on the scalar paths.
package fraction
