package ui

import (
	"strings"
	"testing"

	"bytebeat/internal/synth"
)

func TestPositionText(t *testing.T) {
	tests := []struct {
		st   synth.Status
		want string
	}{
		{synth.Status{}, "t=0  0.0s  stopped"},
		{synth.Status{State: synth.Playing, Source: synth.SourceUser, Position: 12000.5}, "t=12000  1.5s  playing  user"},
		{synth.Status{State: synth.Paused, Source: synth.SourcePreset, Position: 800, Faults: 3}, "t=800  0.1s  paused  preset  faults: 3"},
	}
	for _, tc := range tests {
		if got := PositionText(tc.st, 8000); got != tc.want {
			t.Errorf("PositionText(%+v) = %q, want %q", tc.st, got, tc.want)
		}
	}
}

func TestStatusLine(t *testing.T) {
	sess := synth.NewSession(synth.NewEngine(synth.DefaultSampleRate, nil), nil, "t >")
	_ = sess.TogglePlay(t.Context())
	line := StatusLine(sess)
	for _, want := range []string{"[Play]", "speed 1.00x", "volume 1.00", "Reverse: Off", "error: invalid bytebeat code"} {
		if !strings.Contains(line, want) {
			t.Errorf("status line %q missing %q", line, want)
		}
	}
}

func TestApproach(t *testing.T) {
	if v := Approach(1, 0, 0.25); v != 0.75 {
		t.Errorf("Approach down = %v", v)
	}
	if v := Approach(0.1, 0, 0.3); v != 0 {
		t.Errorf("Approach overshoot = %v", v)
	}
	if v := Approach(0, 1, 2); v != 1 {
		t.Errorf("Approach up = %v", v)
	}
}
