package app

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/oto/v2"

	"bytebeat/internal/synth"
)

const (
	otoChannels = 1
	otoFormat   = oto.FormatFloat32LE
)

// otoDevice plays the stream through an oto context. The context becomes
// usable asynchronously; Resume waits for it.
type otoDevice struct {
	ctx    *oto.Context
	ready  chan struct{}
	stream *synth.Stream
	player oto.Player
}

func newOtoDevice(rate int, stream *synth.Stream) (*otoDevice, error) {
	ctx, ready, err := oto.NewContext(rate, otoChannels, otoFormat)
	if err != nil {
		return nil, fmt.Errorf("oto context: %w", err)
	}
	return &otoDevice{ctx: ctx, ready: ready, stream: stream}, nil
}

func (d *otoDevice) Resume(ctx context.Context) error {
	select {
	case <-d.ready:
	case <-ctx.Done():
		return ctx.Err()
	}
	if err := d.ctx.Err(); err != nil {
		return err
	}
	if err := d.ctx.Resume(); err != nil {
		return err
	}
	if d.player == nil {
		d.player = d.ctx.NewPlayer(d.stream)
		d.player.Play()
	}
	return d.player.Err()
}

func (d *otoDevice) Close() error {
	if d.player == nil {
		return nil
	}
	err := d.player.Close()
	d.player = nil
	return err
}
