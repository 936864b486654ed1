package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bytebeat/internal/config"
	"bytebeat/internal/synth"
)

// Device is a synth.Device that can be shut down.
type Device interface {
	synth.Device
	Close() error
}

// OpenDevice opens the configured backend. Every backend pulls the same
// synth.Stream, so transitions land on block boundaries whichever is used.
func OpenDevice(cfg config.Config, stream *synth.Stream) (Device, error) {
	switch cfg.Backend {
	case config.BackendOto:
		return newOtoDevice(cfg.SampleRate, stream)
	case config.BackendPulse:
		return newPulseDevice(cfg.SampleRate, stream)
	case config.BackendNone:
		return newNullDevice(cfg.SampleRate, stream), nil
	}
	return nil, fmt.Errorf("unknown audio backend %q", cfg.Backend)
}

// nullDevice consumes the stream in real time without producing sound, so
// the scope and transport behave as if a device were attached.
type nullDevice struct {
	rate   int
	stream *synth.Stream

	start   sync.Once
	closed  sync.Once
	running bool
	stop    chan struct{}
	done    chan struct{}
}

func newNullDevice(rate int, stream *synth.Stream) *nullDevice {
	return &nullDevice{
		rate:   rate,
		stream: stream,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

func (d *nullDevice) Resume(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.start.Do(func() {
		d.running = true
		go d.run()
	})
	return nil
}

func (d *nullDevice) run() {
	defer close(d.done)
	block := make([]float32, synth.BlockFrames)
	period := time.Duration(float64(time.Second) * float64(synth.BlockFrames) / float64(d.rate))
	tick := time.NewTicker(period)
	defer tick.Stop()
	for {
		select {
		case <-d.stop:
			return
		case <-tick.C:
			d.stream.ReadFloat32(block)
		}
	}
}

func (d *nullDevice) Close() error {
	d.start.Do(func() {}) // a device closed before it started never starts
	d.closed.Do(func() {
		close(d.stop)
		if d.running {
			<-d.done
		}
	})
	return nil
}
