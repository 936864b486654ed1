package app

import (
	"context"
	"fmt"

	"github.com/jfreymuth/pulse"

	"bytebeat/internal/synth"
)

// pulseLatency is the requested server-side buffer in seconds.
const pulseLatency = 0.05

// pulseDevice plays the stream through a PulseAudio (or PipeWire) server.
type pulseDevice struct {
	client   *pulse.Client
	playback *pulse.PlaybackStream
}

func newPulseDevice(rate int, stream *synth.Stream) (*pulseDevice, error) {
	c, err := pulse.NewClient(
		pulse.ClientApplicationName(WindowTitle),
	)
	if err != nil {
		return nil, fmt.Errorf("pulse client: %w", err)
	}
	p, err := c.NewPlayback(pulse.Float32Reader(stream.ReadFloat32),
		pulse.PlaybackMono,
		pulse.PlaybackSampleRate(rate),
		pulse.PlaybackLatency(pulseLatency),
	)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("pulse playback: %w", err)
	}
	return &pulseDevice{client: c, playback: p}, nil
}

func (d *pulseDevice) Resume(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := d.playback.Error(); err != nil {
		return err
	}
	if !d.playback.Running() {
		d.playback.Start()
	}
	return nil
}

func (d *pulseDevice) Close() error {
	d.playback.Close()
	d.client.Close()
	return nil
}
