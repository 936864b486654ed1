package app

import (
	"fmt"
	"os"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.design/x/clipboard"

	"bytebeat/internal/synth"
	"bytebeat/internal/ui"
)

// Controls turns window input into field edits and bus events. The field
// always has keyboard focus, so transport keys are the non-printing ones.
type Controls struct {
	bus   *ui.EventBus
	sess  *synth.Session
	field *ui.TextField

	clipboardOnce sync.Once
	clipboardOK   bool

	// flash fades each button's highlight after a click.
	flash map[ui.ButtonKind]float64
}

func NewControls(bus *ui.EventBus, sess *synth.Session, field *ui.TextField) *Controls {
	return &Controls{
		bus:   bus,
		sess:  sess,
		field: field,
		flash: make(map[ui.ButtonKind]float64),
	}
}

// keyEvents are the transport shortcuts.
var keyEvents = map[glfw.Key]ui.Event{
	glfw.KeyEnter:    {Type: ui.EventTogglePlay},
	glfw.KeyKPEnter:  {Type: ui.EventTogglePlay},
	glfw.KeyF2:       {Type: ui.EventStop},
	glfw.KeyF3:       {Type: ui.EventReverse},
	glfw.KeyF4:       {Type: ui.EventPreset},
	glfw.KeyUp:       {Type: ui.EventSpeed, Delta: synth.SpeedStep},
	glfw.KeyDown:     {Type: ui.EventSpeed, Delta: -synth.SpeedStep},
	glfw.KeyPageUp:   {Type: ui.EventVolume, Delta: synth.VolumeStep},
	glfw.KeyPageDown: {Type: ui.EventVolume, Delta: -synth.VolumeStep},
	glfw.KeyEscape:   {Type: ui.EventQuit},
}

// Update applies one frame of input.
func (c *Controls) Update(window *glfw.Window, in *Input, layout ui.Layout, fbW, fbH int, dt float64) {
	keys, chars := in.Drain()
	edited := false
	for _, k := range keys {
		if k.Mods&(glfw.ModControl|glfw.ModSuper) != 0 {
			switch k.Key {
			case glfw.KeyV:
				edited = c.paste() || edited
			case glfw.KeyC:
				c.copy()
			}
			continue
		}
		switch k.Key {
		case glfw.KeyBackspace:
			c.field.Backspace()
			edited = true
		case glfw.KeyDelete:
			c.field.Delete()
			edited = true
		case glfw.KeyLeft:
			c.field.Move(-1)
		case glfw.KeyRight:
			c.field.Move(1)
		case glfw.KeyHome:
			c.field.Home()
		case glfw.KeyEnd:
			c.field.End()
		default:
			if ev, ok := keyEvents[k.Key]; ok {
				c.emit(ev)
			}
		}
	}
	for _, ch := range chars {
		c.field.Insert(string(ch))
		edited = true
	}
	if edited {
		c.sess.SetExpression(c.field.String())
	}

	if in.JustClicked(window, glfw.MouseButtonLeft) {
		x, y := CursorFramebufferPos(window, fbW, fbH)
		if kind, ok := layout.Hit(x, y); ok {
			c.flash[kind] = 1
			c.emit(kind.Event())
		}
	}
	for k, v := range c.flash {
		c.flash[k] = ui.Approach(v, 0, dt*4)
	}
}

// Flash returns the highlight level of a button in [0, 1].
func (c *Controls) Flash(kind ui.ButtonKind) float64 { return c.flash[kind] }

func (c *Controls) emit(ev ui.Event) {
	// The field text is what plays, even if nothing was typed this frame.
	c.sess.SetExpression(c.field.String())
	c.bus.Emit(ev)
}

func (c *Controls) clipboardReady() bool {
	c.clipboardOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "clipboard unavailable: %v\n", err)
			return
		}
		c.clipboardOK = true
	})
	return c.clipboardOK
}

func (c *Controls) paste() bool {
	if !c.clipboardReady() {
		return false
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return false
	}
	c.field.Insert(string(data))
	return true
}

func (c *Controls) copy() {
	if !c.clipboardReady() {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(c.field.String()))
}
