package schedule

// Default step ladder breakpoints (µm) and steps. A rung's step applies
// to every center strictly below its breakpoint; DefaultFinalStep applies
// beyond the last breakpoint.
const (
	DefaultFineLimit   = 8  // step 1 region: 1..7 µm
	DefaultMediumLimit = 24 // step 2 region
	DefaultCoarseLimit = 48 // step 4 region
	DefaultWideLimit   = 96 // step 8 region
	DefaultFinalStep   = 16 // beyond DefaultWideLimit
)

// Rung is one segment of the step ladder: Step is the gap between
// consecutive centers while the current center is below Below.
type Rung struct {
	Below int
	Step  int
}

// Options configures schedule generation. The zero value is NOT usable;
// start from DefaultOptions.
type Options struct {
	// Ladder is the ordered step ladder. Breakpoints must be strictly
	// increasing and steps positive and non-decreasing, so the monotone
	// spacing property holds by construction.
	Ladder []Rung

	// FinalStep applies beyond the last rung. Must be ≥ the last rung's
	// step.
	FinalStep int
}

// DefaultOptions returns the production ladder: steps 1/2/4/8 below
// 8/24/48/96 µm and 16 beyond.
func DefaultOptions() Options {
	return Options{
		Ladder: []Rung{
			{Below: DefaultFineLimit, Step: 1},
			{Below: DefaultMediumLimit, Step: 2},
			{Below: DefaultCoarseLimit, Step: 4},
			{Below: DefaultWideLimit, Step: 8},
		},
		FinalStep: DefaultFinalStep,
	}
}

// validate enforces the ladder invariants listed on Options.
func (o *Options) validate() error {
	if len(o.Ladder) == 0 || o.FinalStep < 1 {
		return ErrBadLadder
	}
	prevBelow, prevStep := 0, 0
	for _, r := range o.Ladder {
		if r.Below <= prevBelow || r.Step < 1 || r.Step < prevStep {
			return ErrBadLadder
		}
		prevBelow, prevStep = r.Below, r.Step
	}
	if o.FinalStep < prevStep {
		return ErrBadLadder
	}
	return nil
}

// stepAt returns the gap to the next center after d.
func (o *Options) stepAt(d int) int {
	for _, r := range o.Ladder {
		if d < r.Below {
			return r.Step
		}
	}
	return o.FinalStep
}
