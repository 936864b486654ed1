package synth

import "testing"

func constFunc(v float64) SampleFunc { return func(int64) float64 { return v } }

func TestTransportStep(t *testing.T) {
	tests := []struct {
		name    string
		start   float64
		speed   float64
		reverse bool
		want    []int64
		end     float64
	}{
		{"forward", 0, 1, false, []int64{0, 1, 2, 3}, 4},
		{"half speed accumulates", 0, 0.5, false, []int64{0, 0, 1, 1, 2, 2}, 3},
		{"speed 1.5", 0, 1.5, false, []int64{0, 1, 3, 4}, 6},
		{"frozen", 7, 0, false, []int64{7, 7, 7}, 7},
		{"reverse", 3, 1, true, []int64{3, 2, 1, 0, 0, 0}, 0},
		{"reverse fractional sticks at zero", 1, 0.4, true, []int64{1, 0, 0, 0}, 0},
		{"reverse from zero", 0, 1, true, []int64{0}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTransport()
			tr.pos = tc.start
			tr.SetSpeed(tc.speed)
			if tc.reverse {
				tr.ToggleReverse()
			}
			for i, want := range tc.want {
				if got := tr.Step(); got != want {
					t.Errorf("step %d: index %d, want %d", i, got, want)
				}
				if tr.Position() < 0 {
					t.Fatalf("step %d: t = %v, below zero", i, tr.Position())
				}
			}
			if tr.Position() != tc.end {
				t.Errorf("final t = %v, want %v", tr.Position(), tc.end)
			}
		})
	}
}

func TestTransportTransitions(t *testing.T) {
	tr := NewTransport()
	if tr.State() != Stopped || tr.Source() != SourceNone || tr.Active() != nil {
		t.Fatalf("new transport: state %v source %v", tr.State(), tr.Source())
	}

	tr.Start(constFunc(1))
	if !tr.Playing() || tr.Source() != SourceUser {
		t.Fatalf("after Start: state %v source %v", tr.State(), tr.Source())
	}
	tr.Step()
	tr.Step()

	tr.Pause()
	if tr.State() != Paused || tr.Position() != 2 {
		t.Fatalf("after Pause: state %v t %v", tr.State(), tr.Position())
	}

	// Resume keeps t.
	tr.Start(constFunc(2))
	if tr.Position() != 2 {
		t.Errorf("resume from pause reset t to %v", tr.Position())
	}

	tr.Stop()
	if tr.State() != Stopped || tr.Position() != 0 {
		t.Fatalf("after Stop: state %v t %v", tr.State(), tr.Position())
	}

	tr.pos = 50
	tr.Start(nil)
	if tr.Position() != 0 {
		t.Errorf("start from stopped kept t = %v", tr.Position())
	}

	tr.PlayPreset()
	if tr.Source() != SourcePreset || !tr.Playing() || tr.Position() != 0 {
		t.Fatalf("after PlayPreset: source %v state %v t %v", tr.Source(), tr.State(), tr.Position())
	}
	// Starting while on the preset does not replace it.
	tr.Pause()
	tr.Start(nil)
	if tr.Source() != SourcePreset {
		t.Errorf("resume switched source to %v", tr.Source())
	}

	tr.Stop()
	if tr.Source() != SourceUser {
		t.Errorf("stop from preset left source %v, want user", tr.Source())
	}
}

func TestTransportStopFromPresetWithoutUser(t *testing.T) {
	tr := NewTransport()
	tr.PlayPreset()
	tr.Stop()
	if tr.Source() != SourceNone {
		t.Errorf("source = %v, want none", tr.Source())
	}
}

func TestTransportClamps(t *testing.T) {
	tr := NewTransport()
	for _, tc := range []struct{ in, want float64 }{
		{-1, 0}, {0.25, 0.25}, {5, MaxSpeed},
	} {
		tr.SetSpeed(tc.in)
		if tr.Speed() != tc.want {
			t.Errorf("SetSpeed(%v) = %v, want %v", tc.in, tr.Speed(), tc.want)
		}
	}
	for _, tc := range []struct{ in, want float64 }{
		{-0.5, 0}, {0.3, 0.3}, {1.5, 1},
	} {
		tr.SetVolume(tc.in)
		if tr.Volume() != tc.want {
			t.Errorf("SetVolume(%v) = %v, want %v", tc.in, tr.Volume(), tc.want)
		}
	}
}
