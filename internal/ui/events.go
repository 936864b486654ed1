package ui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"bytebeat/internal/synth"
)

// EventType is a control action requested by a front end.
type EventType int

const (
	EventTogglePlay EventType = iota
	EventStop
	EventReverse
	EventPreset
	EventSpeed  // Delta carries the change
	EventVolume // Delta carries the change
	EventQuit
)

func (t EventType) String() string {
	switch t {
	case EventTogglePlay:
		return "play"
	case EventStop:
		return "stop"
	case EventReverse:
		return "reverse"
	case EventPreset:
		return "preset"
	case EventSpeed:
		return "speed"
	case EventVolume:
		return "volume"
	case EventQuit:
		return "quit"
	}
	return fmt.Sprintf("event(%d)", int(t))
}

type Event struct {
	Type  EventType
	Delta float64
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

// BindSession routes transport events to sess. Failures are already shown
// on the session's status line; audio failures are also logged.
func BindSession(ctx context.Context, eb *EventBus, sess *synth.Session) {
	report := func(err error) {
		var ae *synth.AudioResumeError
		if errors.As(err, &ae) {
			fmt.Fprintf(os.Stderr, "audio: %v\n", ae.Err)
		}
	}
	eb.Subscribe(EventTogglePlay, func(Event) {
		if err := sess.TogglePlay(ctx); err != nil {
			report(err)
		}
	})
	eb.Subscribe(EventStop, func(Event) { sess.Stop() })
	eb.Subscribe(EventReverse, func(Event) { sess.ToggleReverse() })
	eb.Subscribe(EventPreset, func(Event) {
		if err := sess.PlayPreset(ctx); err != nil {
			report(err)
		}
	})
	eb.Subscribe(EventSpeed, func(e Event) { sess.NudgeSpeed(e.Delta) })
	eb.Subscribe(EventVolume, func(e Event) { sess.NudgeVolume(e.Delta) })
}
