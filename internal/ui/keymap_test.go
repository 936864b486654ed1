package ui

import (
	"testing"

	"bytebeat/internal/synth"
)

func TestTerminalEvent(t *testing.T) {
	tests := []struct {
		in   byte
		want Event
		ok   bool
	}{
		{' ', Event{Type: EventTogglePlay}, true},
		{'\r', Event{Type: EventTogglePlay}, true},
		{'s', Event{Type: EventStop}, true},
		{'R', Event{Type: EventReverse}, true},
		{'p', Event{Type: EventPreset}, true},
		{'+', Event{Type: EventSpeed, Delta: synth.SpeedStep}, true},
		{'-', Event{Type: EventSpeed, Delta: -synth.SpeedStep}, true},
		{']', Event{Type: EventVolume, Delta: synth.VolumeStep}, true},
		{'[', Event{Type: EventVolume, Delta: -synth.VolumeStep}, true},
		{'q', Event{Type: EventQuit}, true},
		{0x03, Event{Type: EventQuit}, true},
		{0x1b, Event{}, false},
		{'x', Event{}, false},
	}
	for _, tc := range tests {
		got, ok := TerminalEvent(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("TerminalEvent(%q) = %+v, %v; want %+v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
