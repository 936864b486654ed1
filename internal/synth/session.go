package synth

import (
	"context"
	"fmt"
	"math"
)

// Device is the host audio output. Resume must return once the device is
// pulling samples, or fail.
type Device interface {
	Resume(ctx context.Context) error
}

// AudioResumeError reports that the audio device could not be started.
type AudioResumeError struct {
	Err error
}

func (e *AudioResumeError) Error() string { return "audio device unavailable: " + e.Err.Error() }
func (e *AudioResumeError) Unwrap() error { return e.Err }

// CompileError reports that the expression text was rejected.
type CompileError struct {
	Source string
	Err    error
}

func (e *CompileError) Error() string { return "invalid bytebeat code: " + e.Err.Error() }
func (e *CompileError) Unwrap() error { return e.Err }

// Session is what a control surface drives: the engine, the device it plays
// through, the expression text being edited and the last status message.
type Session struct {
	Engine *Engine
	Device Device

	expression string
	message    string
	failed     bool
}

func NewSession(e *Engine, dev Device, expression string) *Session {
	return &Session{Engine: e, Device: dev, expression: expression, message: "Stopped"}
}

// Expression returns the current input text.
func (s *Session) Expression() string { return s.expression }

// SetExpression replaces the input text. It takes effect on the next play
// from stopped or paused.
func (s *Session) SetExpression(src string) { s.expression = src }

// Message returns the status line and whether it describes a failure.
func (s *Session) Message() (string, bool) { return s.message, s.failed }

func (s *Session) note(msg string) {
	s.message = msg
	s.failed = false
}

func (s *Session) fail(err error) {
	s.message = err.Error()
	s.failed = true
}

func (s *Session) resume(ctx context.Context) error {
	if s.Device == nil {
		return nil
	}
	if err := s.Device.Resume(ctx); err != nil {
		rerr := &AudioResumeError{Err: err}
		s.fail(rerr)
		return rerr
	}
	return nil
}

// TogglePlay pauses when playing. Otherwise it waits for the device and then
// plays, compiling the expression unless the preset is selected.
func (s *Session) TogglePlay(ctx context.Context) error {
	playing := s.Engine.Status().State == Playing
	if !playing {
		if err := s.resume(ctx); err != nil {
			return err
		}
	}
	if err := s.Engine.TogglePlay(s.expression); err != nil {
		cerr := &CompileError{Source: s.expression, Err: err}
		s.fail(cerr)
		return cerr
	}
	if playing {
		s.note("Paused")
	} else {
		s.note("Playing")
	}
	return nil
}

// PlayPreset waits for the device and switches to the preset song.
func (s *Session) PlayPreset(ctx context.Context) error {
	if err := s.resume(ctx); err != nil {
		return err
	}
	s.Engine.PlayPreset()
	s.note("Playing preset song")
	return nil
}

func (s *Session) Stop() {
	s.Engine.Stop()
	s.note("Stopped")
}

func (s *Session) ToggleReverse() { s.Engine.ToggleReverse() }

// NudgeSpeed moves speed by delta, snapped to SpeedStep.
func (s *Session) NudgeSpeed(delta float64) {
	v := s.Engine.Status().Speed + delta
	s.Engine.SetSpeed(math.Round(v/SpeedStep) * SpeedStep)
}

// NudgeVolume moves volume by delta, snapped to VolumeStep.
func (s *Session) NudgeVolume(delta float64) {
	v := s.Engine.Status().Volume + delta
	s.Engine.SetVolume(math.Round(v/VolumeStep) * VolumeStep)
}

// Labels is the visible text of each control.
type Labels struct {
	Play    string
	Stop    string
	Reverse string
	Speed   string
	Volume  string
	Preset  string
}

// Labels reflects the current state on the controls.
func (s *Session) Labels() Labels {
	st := s.Engine.Status()
	l := Labels{
		Play:    "Play",
		Stop:    "Stop",
		Reverse: "Reverse: Off",
		Speed:   fmt.Sprintf("%.2fx", st.Speed),
		Volume:  fmt.Sprintf("%.2f", st.Volume),
		Preset:  "Play preset song",
	}
	if st.State == Playing {
		l.Play = "Pause"
	}
	if st.Reverse {
		l.Reverse = "Reverse: On"
	}
	return l
}
