package synth

import "math"

// Smoother is a one-pole gain ramp. Each call to Next moves the value a
// fixed fraction of the remaining distance toward the target, so a step
// change in volume never shows up as a step in the output.
type Smoother struct {
	value  float64
	target float64
	coeff  float64
}

// NewSmoother starts at initial with the given time constant in seconds.
func NewSmoother(initial, timeConstant float64, sampleRate int) *Smoother {
	s := &Smoother{value: initial, target: initial}
	s.coeff = smoothingCoeff(timeConstant, sampleRate)
	return s
}

func smoothingCoeff(timeConstant float64, sampleRate int) float64 {
	if timeConstant <= 0 || sampleRate <= 0 {
		return 1
	}
	return 1 - math.Exp(-1/(timeConstant*float64(sampleRate)))
}

// SetTarget sets the value the ramp heads toward.
func (s *Smoother) SetTarget(v float64) { s.target = v }

// Target returns the current target.
func (s *Smoother) Target() float64 { return s.target }

// Value returns the current gain without advancing.
func (s *Smoother) Value() float64 { return s.value }

// MaxStep is the largest per-sample change for a full-scale (0..1) move.
func (s *Smoother) MaxStep() float64 { return s.coeff }

// Next advances one sample and returns the new gain.
func (s *Smoother) Next() float64 {
	s.value += (s.target - s.value) * s.coeff
	// Snap once the residue is inaudible so the ramp actually lands.
	if math.Abs(s.target-s.value) < 1e-6 {
		s.value = s.target
	}
	return s.value
}
