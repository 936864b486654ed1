package ui

import "bytebeat/internal/synth"

// TerminalHelp lists the single-key controls of the terminal front end.
const TerminalHelp = "space play/pause  s stop  r reverse  p preset  +/- speed  ]/[ volume  q quit"

// TerminalEvent maps one raw terminal byte to a control event.
func TerminalEvent(b byte) (Event, bool) {
	switch b {
	case ' ', '\r', '\n':
		return Event{Type: EventTogglePlay}, true
	case 's', 'S':
		return Event{Type: EventStop}, true
	case 'r', 'R':
		return Event{Type: EventReverse}, true
	case 'p', 'P':
		return Event{Type: EventPreset}, true
	case '+', '=':
		return Event{Type: EventSpeed, Delta: synth.SpeedStep}, true
	case '-', '_':
		return Event{Type: EventSpeed, Delta: -synth.SpeedStep}, true
	case ']':
		return Event{Type: EventVolume, Delta: synth.VolumeStep}, true
	case '[':
		return Event{Type: EventVolume, Delta: -synth.VolumeStep}, true
	case 'q', 'Q', 0x03: // Ctrl+C arrives as a byte in raw mode
		return Event{Type: EventQuit}, true
	}
	return Event{}, false
}
