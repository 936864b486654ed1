package app

import (
	"bytebeat/internal/synth"
	"bytebeat/internal/ui"
)

const fieldCaption = "Bytebeat code  (Enter play/pause, F2 stop, F3 reverse, F4 preset)"

// HUD draws the whole window: expression field, controls, status line and
// the oscilloscope.
type HUD struct {
	wave []float32
	path []float32
	seq  uint64
}

func (h *HUD) Render(r *Renderer, l ui.Layout, sess *synth.Session, field *ui.TextField, c *Controls, now float64) {
	labels := sess.Labels()
	st := sess.Engine.Status()
	scale := float32(ui.TextScale)

	// Boxes.
	r.DrawRect(l.Field, ui.Palette.FieldFocus, 1)
	for _, b := range l.Buttons {
		col := ui.Palette.Button
		if (b.Kind == ui.ButtonPlay && st.State == synth.Playing) ||
			(b.Kind == ui.ButtonReverse && st.Reverse) ||
			(b.Kind == ui.ButtonPreset && st.Source == synth.SourcePreset && st.State == synth.Playing) {
			col = ui.Palette.ButtonLit
		}
		r.DrawRect(b.Rect, col, 1)
		if f := c.Flash(b.Kind); f > 0 {
			r.DrawRect(b.Rect, ui.Palette.Text, float32(f)*0.35)
		}
	}
	r.DrawRect(l.Scope, ui.Palette.Scope, 1)
	mid := l.Scope.Y + l.Scope.H/2
	r.DrawRect(ui.Rect{X: l.Scope.X, Y: mid, W: l.Scope.W, H: 1}, ui.Palette.Midline, 1)

	cols := ui.FitColumns(l.Field.W-16, scale)
	visible, caretCol := field.Window(cols)
	// Caret blinks at 2 Hz.
	if int(now*4)%2 == 0 {
		cx := l.Field.X + 8 + float32(caretCol*ui.FontCellW)*scale
		r.DrawRect(ui.Rect{X: cx, Y: l.Field.Y + 4, W: 2, H: l.Field.H - 8}, ui.Palette.Caret, 1)
	}
	r.FlushRects()

	// Waveform of the most recent block.
	var seq uint64
	h.wave, seq = sess.Engine.Scope().Latest(h.wave)
	if seq != h.seq || h.path == nil {
		inner := l.Scope
		inner.X += ui.WaveformInset
		inner.Y += ui.WaveformInset
		inner.W -= 2 * ui.WaveformInset
		inner.H -= 2 * ui.WaveformInset
		h.path = synth.WaveformPath(h.wave, inner.W, inner.H, h.path)
		h.seq = seq
	}
	r.DrawPolyline(h.path, l.Scope.X+ui.WaveformInset, l.Scope.Y+ui.WaveformInset, ui.Palette.Waveform)

	// Text.
	r.DrawStringIn(fieldCaption, l.FieldLabel, 0, scale*0.75, ui.Palette.TextDim)
	r.DrawStringIn(visible, l.Field, 8, scale, ui.Palette.Text)
	for _, b := range l.Buttons {
		r.DrawStringCentred(b.Kind.Label(labels), b.Rect, scale, ui.Palette.Text)
	}
	r.DrawStringIn("Speed "+labels.Speed, l.SpeedText, 0, scale, ui.Palette.Text)
	r.DrawStringIn("Volume "+labels.Volume, l.VolumeText, 0, scale, ui.Palette.Text)

	msg, failed := sess.Message()
	msgCol := ui.Palette.OK
	if failed {
		msgCol = ui.Palette.Error
	}
	pos := ui.PositionText(st, sess.Engine.SampleRate())
	posW := float32(ui.TextWidth(pos, scale*0.75))
	msgCols := ui.FitColumns(l.Status.W-posW-16, scale*0.75)
	if len(msg) > msgCols {
		msg = msg[:max(0, msgCols-3)] + "..."
	}
	r.DrawStringIn(msg, l.Status, 0, scale*0.75, msgCol)
	r.DrawStringIn(pos, ui.Rect{X: l.Status.X + l.Status.W - posW, Y: l.Status.Y, W: posW, H: l.Status.H}, 0, scale*0.75, ui.Palette.TextDim)
	r.FlushText()
}
