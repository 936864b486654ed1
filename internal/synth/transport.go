package synth

import "math"

// State is the transport's play state.
type State int

const (
	Stopped State = iota
	Playing       // samples are pulled and t advances
	Paused        // silent, t retained
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	}
	return "stopped"
}

// Source selects which SampleFunc feeds the engine.
type Source int

const (
	SourceNone   Source = iota
	SourceUser          // compiled user expression
	SourcePreset        // bundled preset song
)

func (s Source) String() string {
	switch s {
	case SourceUser:
		return "user"
	case SourcePreset:
		return "preset"
	}
	return "none"
}

// Transport is the playback state machine. It is not safe for concurrent
// use; Engine serializes access to it.
type Transport struct {
	state   State
	source  Source
	user    SampleFunc
	pos     float64
	reverse bool
	speed   float64
	volume  float64
}

// NewTransport returns a stopped transport at speed 1 and full volume.
func NewTransport() Transport {
	return Transport{speed: DefaultSpeed, volume: DefaultVolume}
}

// Start begins or resumes playback. A non-nil fn replaces the user
// function and selects it. Starting from Stopped rewinds to t=0; resuming
// from Paused keeps t.
func (tr *Transport) Start(fn SampleFunc) {
	if fn != nil {
		tr.user = fn
		tr.source = SourceUser
	}
	if tr.state == Stopped {
		tr.pos = 0
	}
	tr.state = Playing
}

// Pause silences output and keeps t.
func (tr *Transport) Pause() {
	if tr.state == Playing {
		tr.state = Paused
	}
}

// Stop silences output and rewinds t. The preset is deselected so the next
// play goes back to user input.
func (tr *Transport) Stop() {
	tr.state = Stopped
	tr.pos = 0
	if tr.source == SourcePreset {
		tr.source = SourceNone
		if tr.user != nil {
			tr.source = SourceUser
		}
	}
}

// PlayPreset switches to the preset song from t=0, whatever was playing.
func (tr *Transport) PlayPreset() {
	tr.source = SourcePreset
	tr.state = Playing
	tr.pos = 0
}

// ToggleReverse flips the direction of travel.
func (tr *Transport) ToggleReverse() { tr.reverse = !tr.reverse }

// SetSpeed sets the per-sample increment. Negative and NaN become 0.
func (tr *Transport) SetSpeed(v float64) {
	if math.IsNaN(v) || v < 0 {
		v = 0
	}
	if v > MaxSpeed {
		v = MaxSpeed
	}
	tr.speed = v
}

// SetVolume sets the target gain, clamped to [0,1].
func (tr *Transport) SetVolume(v float64) {
	if math.IsNaN(v) || v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	tr.volume = v
}

// Step returns the time index for the current frame and then moves t by
// speed. Reversing never takes t below zero.
func (tr *Transport) Step() int64 {
	index := int64(math.Floor(tr.pos))
	if tr.reverse {
		tr.pos = math.Max(0, tr.pos-tr.speed)
	} else {
		tr.pos += tr.speed
	}
	return index
}

// Active returns the function that should be sampled, or nil for silence.
func (tr *Transport) Active() SampleFunc {
	switch tr.source {
	case SourcePreset:
		return Preset
	case SourceUser:
		return tr.user
	}
	return nil
}

func (tr *Transport) State() State      { return tr.state }
func (tr *Transport) Source() Source    { return tr.source }
func (tr *Transport) Playing() bool     { return tr.state == Playing }
func (tr *Transport) Position() float64 { return tr.pos }
func (tr *Transport) Reverse() bool     { return tr.reverse }
func (tr *Transport) Speed() float64    { return tr.speed }
func (tr *Transport) Volume() float64   { return tr.volume }
