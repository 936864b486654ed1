package app

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"bytebeat/internal/config"
	"bytebeat/internal/synth"
	"bytebeat/internal/ui"
)

func RunDesktop(cfg config.Config) {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	// Audio.
	eng := synth.NewEngine(cfg.SampleRate, nil)
	stream := synth.NewStream(eng)
	dev, err := OpenDevice(cfg, stream)
	if err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
		dev = newNullDevice(cfg.SampleRate, stream)
	}
	defer dev.Close()

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	br, bg, bb := ui.Palette.Background.Floats()
	gl.ClearColor(br, bg, bb, 1.0)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		panic(fmt.Errorf("font: %w", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	field := ui.NewTextField(cfg.Expression)
	sess := synth.NewSession(eng, dev, field.String())
	bus := ui.NewEventBus()
	ui.BindSession(ctx, bus, sess)
	bus.Subscribe(ui.EventQuit, func(ui.Event) { window.SetShouldClose(true) })

	input := NewInput(window)
	controls := NewControls(bus, sess, field)
	var hud HUD

	if cfg.Preset {
		bus.Emit(ui.Event{Type: ui.EventPreset})
	}

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		layout := ui.ComputeLayout(fbW, fbH)

		controls.Update(window, input, layout, fbW, fbH, dt)

		drawFrame(rend, &hud, layout, sess, field, controls, fbW, fbH, now)
		window.SwapBuffers()
	}
}

var drawFailed bool

// drawFrame draws one video frame. A panic while drawing drops the frame;
// the audio device keeps pulling on its own goroutine.
func drawFrame(rend *Renderer, hud *HUD, layout ui.Layout, sess *synth.Session, field *ui.TextField, controls *Controls, fbW, fbH int, now float64) {
	defer func() {
		if r := recover(); r != nil && !drawFailed {
			drawFailed = true
			fmt.Fprintf(os.Stderr, "draw failed: %v\n", r)
		}
	}()
	rend.BeginFrame(fbW, fbH)
	hud.Render(rend, layout, sess, field, controls, now)
}
