package ui

import "bytebeat/internal/synth"

// Rect is an axis-aligned box in framebuffer pixels, origin top-left.
type Rect struct {
	X, Y, W, H float32
}

func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// ButtonKind identifies a clickable control.
type ButtonKind int

const (
	ButtonPlay ButtonKind = iota
	ButtonStop
	ButtonReverse
	ButtonPreset
	ButtonSpeedDown
	ButtonSpeedUp
	ButtonVolumeDown
	ButtonVolumeUp
)

// Event is what clicking the button emits.
func (k ButtonKind) Event() Event {
	switch k {
	case ButtonPlay:
		return Event{Type: EventTogglePlay}
	case ButtonStop:
		return Event{Type: EventStop}
	case ButtonReverse:
		return Event{Type: EventReverse}
	case ButtonPreset:
		return Event{Type: EventPreset}
	case ButtonSpeedDown:
		return Event{Type: EventSpeed, Delta: -synth.SpeedStep}
	case ButtonSpeedUp:
		return Event{Type: EventSpeed, Delta: synth.SpeedStep}
	case ButtonVolumeDown:
		return Event{Type: EventVolume, Delta: -synth.VolumeStep}
	default:
		return Event{Type: EventVolume, Delta: synth.VolumeStep}
	}
}

// Label picks the button's caption from the session labels.
func (k ButtonKind) Label(l synth.Labels) string {
	switch k {
	case ButtonPlay:
		return l.Play
	case ButtonStop:
		return l.Stop
	case ButtonReverse:
		return l.Reverse
	case ButtonPreset:
		return l.Preset
	case ButtonSpeedDown, ButtonVolumeDown:
		return "-"
	default:
		return "+"
	}
}

type Button struct {
	Rect
	Kind ButtonKind
}

// Layout places every widget for one framebuffer size.
type Layout struct {
	FieldLabel Rect
	Field      Rect
	Buttons    []Button
	SpeedText  Rect
	VolumeText Rect
	Status     Rect
	Scope      Rect
}

// buttonWidth fits the widest caption a button can show.
func buttonWidth(chars int) float32 {
	return float32(chars*FontCellW)*TextScale + 16
}

// ComputeLayout stacks, top to bottom: field caption, expression field,
// transport buttons, speed and volume steppers, status line, and the scope
// filling the rest.
func ComputeLayout(fbW, fbH int) Layout {
	w, h := float32(fbW), float32(fbH)
	lineH := float32(FontCellH) * TextScale
	var l Layout
	y := float32(Margin)

	l.FieldLabel = Rect{X: Margin, Y: y, W: w - 2*Margin, H: lineH}
	y += lineH + 4
	l.Field = Rect{X: Margin, Y: y, W: w - 2*Margin, H: FieldHeight}
	y += FieldHeight + ButtonGap

	x := float32(Margin)
	for _, b := range []struct {
		kind  ButtonKind
		chars int
	}{
		{ButtonPlay, len("Pause")},
		{ButtonStop, len("Stop")},
		{ButtonReverse, len("Reverse: Off")},
		{ButtonPreset, len("Play preset song")},
	} {
		bw := buttonWidth(b.chars)
		l.Buttons = append(l.Buttons, Button{Rect: Rect{X: x, Y: y, W: bw, H: ButtonHeight}, Kind: b.kind})
		x += bw + ButtonGap
	}
	y += ButtonHeight + ButtonGap

	step := buttonWidth(1)
	value := buttonWidth(len("Volume 1.00"))
	x = Margin
	l.Buttons = append(l.Buttons, Button{Rect: Rect{X: x, Y: y, W: step, H: ButtonHeight}, Kind: ButtonSpeedDown})
	x += step + ButtonGap
	l.SpeedText = Rect{X: x, Y: y, W: value, H: ButtonHeight}
	x += value + ButtonGap
	l.Buttons = append(l.Buttons, Button{Rect: Rect{X: x, Y: y, W: step, H: ButtonHeight}, Kind: ButtonSpeedUp})
	x += step + 3*ButtonGap
	l.Buttons = append(l.Buttons, Button{Rect: Rect{X: x, Y: y, W: step, H: ButtonHeight}, Kind: ButtonVolumeDown})
	x += step + ButtonGap
	l.VolumeText = Rect{X: x, Y: y, W: value, H: ButtonHeight}
	x += value + ButtonGap
	l.Buttons = append(l.Buttons, Button{Rect: Rect{X: x, Y: y, W: step, H: ButtonHeight}, Kind: ButtonVolumeUp})
	y += ButtonHeight + ButtonGap

	l.Status = Rect{X: Margin, Y: y, W: w - 2*Margin, H: StatusHeight}
	y += StatusHeight + ButtonGap

	l.Scope = Rect{X: Margin, Y: y, W: w - 2*Margin, H: max(0, h-Margin-y)}
	return l
}

// Hit returns the button under (x, y).
func (l Layout) Hit(x, y float32) (ButtonKind, bool) {
	for _, b := range l.Buttons {
		if b.Contains(x, y) {
			return b.Kind, true
		}
	}
	return 0, false
}
