package synth

import (
	"math"
	"testing"
)

func TestSmootherConverges(t *testing.T) {
	s := NewSmoother(1, GainTimeConstant, DefaultSampleRate)
	s.SetTarget(0)

	want := 1 - math.Exp(-1/(GainTimeConstant*DefaultSampleRate))
	if got := s.MaxStep(); math.Abs(got-want) > 1e-12 {
		t.Fatalf("MaxStep = %v, want %v", got, want)
	}

	prev := s.Value()
	for i := 0; i < 5000; i++ {
		v := s.Next()
		if v > prev {
			t.Fatalf("sample %d rose from %v to %v", i, prev, v)
		}
		if prev-v > s.MaxStep()+1e-12 {
			t.Fatalf("sample %d stepped %v", i, prev-v)
		}
		prev = v
	}
	if s.Value() != 0 {
		t.Errorf("did not land on target: %v", s.Value())
	}
}

func TestSmootherTimeConstant(t *testing.T) {
	s := NewSmoother(0, GainTimeConstant, DefaultSampleRate)
	s.SetTarget(1)
	n := int(GainTimeConstant * DefaultSampleRate)
	for range n {
		s.Next()
	}
	// One time constant covers 1-1/e of the distance.
	if got, want := s.Value(), 1-math.Exp(-1); math.Abs(got-want) > 1e-3 {
		t.Errorf("after %d samples gain = %v, want about %v", n, got, want)
	}
}

func TestSmootherDegenerate(t *testing.T) {
	s := NewSmoother(0.5, 0, DefaultSampleRate)
	s.SetTarget(0.25)
	if v := s.Next(); v != 0.25 {
		t.Errorf("zero time constant: %v, want immediate 0.25", v)
	}
	if s.Target() != 0.25 {
		t.Errorf("Target = %v", s.Target())
	}
}
