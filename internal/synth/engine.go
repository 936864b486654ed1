package synth

import (
	"math"
	"sync"
)

// Engine renders audio blocks from a Transport. One mutex covers both the
// render loop and every transition, so a control change lands between
// blocks and never inside one.
type Engine struct {
	mu      sync.Mutex
	tr      Transport
	gain    *Smoother
	compile CompileFunc
	scope   *Scope
	wave    []float32
	faults  uint64
	rate    int
}

// NewEngine creates a stopped engine. A nil compile uses CompileExpression.
func NewEngine(sampleRate int, compile CompileFunc) *Engine {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if compile == nil {
		compile = CompileExpression
	}
	return &Engine{
		tr:      NewTransport(),
		gain:    NewSmoother(DefaultVolume, GainTimeConstant, sampleRate),
		compile: compile,
		scope:   &Scope{},
		wave:    make([]float32, 0, BlockFrames),
		rate:    sampleRate,
	}
}

// SampleRate is the number of frames per second the engine was built for.
func (e *Engine) SampleRate() int { return e.rate }

// Scope returns the waveform handoff for renderers.
func (e *Engine) Scope() *Scope { return e.scope }

// Render fills out with the next len(out) frames. Output slots carry the
// smoothed gain; the published waveform does not.
func (e *Engine) Render(out []float32) {
	e.mu.Lock()
	defer e.mu.Unlock()

	wave := e.wave[:0]
	fn := e.tr.Active()
	playing := e.tr.Playing()
	e.gain.SetTarget(e.tr.Volume())
	for i := range out {
		var v float32
		if playing {
			v = e.sample(fn, e.tr.Step())
		}
		wave = append(wave, v)
		out[i] = v * float32(e.gain.Next())
	}
	e.wave = wave
	e.scope.Publish(wave)
}

// sample evaluates fn at index and normalizes it. A non-finite result or a
// panic inside fn costs that one sample, which plays as silence.
func (e *Engine) sample(fn SampleFunc, index int64) (v float32) {
	if fn == nil {
		return 0
	}
	defer func() {
		if r := recover(); r != nil {
			e.faults++
			v = 0
		}
	}()
	raw := fn(index)
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		e.faults++
		return 0
	}
	return Normalize(raw)
}

// Play starts playback. Unless the preset is selected, src is compiled
// first; a compile error is returned and nothing changes. Play while
// already playing does nothing.
func (e *Engine) Play(src string) error {
	e.mu.Lock()
	if e.tr.Playing() {
		e.mu.Unlock()
		return nil
	}
	preset := e.tr.Source() == SourcePreset
	e.mu.Unlock()

	var fn SampleFunc
	if !preset {
		var err error
		if fn, err = e.compile(src); err != nil {
			return err
		}
	}

	e.mu.Lock()
	e.tr.Start(fn)
	e.mu.Unlock()
	return nil
}

// TogglePlay pauses when playing and plays otherwise.
func (e *Engine) TogglePlay(src string) error {
	e.mu.Lock()
	if e.tr.Playing() {
		e.tr.Pause()
		e.mu.Unlock()
		return nil
	}
	e.mu.Unlock()
	return e.Play(src)
}

func (e *Engine) Pause() {
	e.mu.Lock()
	e.tr.Pause()
	e.mu.Unlock()
}

func (e *Engine) Stop() {
	e.mu.Lock()
	e.tr.Stop()
	e.mu.Unlock()
}

func (e *Engine) PlayPreset() {
	e.mu.Lock()
	e.tr.PlayPreset()
	e.mu.Unlock()
}

func (e *Engine) ToggleReverse() {
	e.mu.Lock()
	e.tr.ToggleReverse()
	e.mu.Unlock()
}

func (e *Engine) SetSpeed(v float64) {
	e.mu.Lock()
	e.tr.SetSpeed(v)
	e.mu.Unlock()
}

func (e *Engine) SetVolume(v float64) {
	e.mu.Lock()
	e.tr.SetVolume(v)
	e.mu.Unlock()
}

// Status is a consistent snapshot of the engine for display.
type Status struct {
	State    State
	Source   Source
	Position float64
	Reverse  bool
	Speed    float64
	Volume   float64
	Gain     float64
	Faults   uint64
}

// Status returns the current transport state.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Status{
		State:    e.tr.State(),
		Source:   e.tr.Source(),
		Position: e.tr.Position(),
		Reverse:  e.tr.Reverse(),
		Speed:    e.tr.Speed(),
		Volume:   e.tr.Volume(),
		Gain:     e.gain.Value(),
		Faults:   e.faults,
	}
}
