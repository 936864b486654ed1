package app

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// KeyStroke is one press or auto-repeat of a key.
type KeyStroke struct {
	Key  glfw.Key
	Mods glfw.ModifierKey
}

// Input collects what happened since the last frame. Keys arrive through
// callbacks so auto-repeat and typed characters are not lost between polls.
type Input struct {
	prevMouse map[glfw.MouseButton]bool
	keys      []KeyStroke
	chars     []rune
}

func NewInput(window *glfw.Window) *Input {
	in := &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
	}
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Press || action == glfw.Repeat {
			in.keys = append(in.keys, KeyStroke{Key: key, Mods: mods})
		}
	})
	window.SetCharCallback(func(_ *glfw.Window, ch rune) {
		in.chars = append(in.chars, ch)
	})
	return in
}

// Drain returns the queued keystrokes and characters and clears the queues.
// The returned slices are only valid until the next PollEvents.
func (in *Input) Drain() ([]KeyStroke, []rune) {
	keys, chars := in.keys, in.chars
	in.keys = in.keys[:0]
	in.chars = in.chars[:0]
	return keys, chars
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

// CursorFramebufferPos converts the cursor position to framebuffer pixels.
func CursorFramebufferPos(window *glfw.Window, fbW, fbH int) (float32, float32) {
	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	if winW <= 0 || winH <= 0 {
		return float32(cx), float32(cy)
	}
	scaleX := float64(fbW) / float64(winW)
	scaleY := float64(fbH) / float64(winH)
	return float32(cx * scaleX), float32(cy * scaleY)
}
