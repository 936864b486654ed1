package synth

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// RenderWAV writes frames samples from e to w as 16-bit mono PCM. The
// engine is rendered block by block exactly as a device would pull it.
func RenderWAV(w io.WriteSeeker, e *Engine, frames int) error {
	rate := e.SampleRate()
	enc := wav.NewEncoder(w, rate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  rate,
		},
		Data:           make([]int, 0, BlockFrames),
		SourceBitDepth: 16,
	}
	block := make([]float32, BlockFrames)
	for remaining := frames; remaining > 0; {
		e.Render(block)
		n := min(remaining, BlockFrames)
		buf.Data = buf.Data[:0]
		for _, v := range block[:n] {
			buf.Data = append(buf.Data, int(v*32767))
		}
		if err := enc.Write(buf); err != nil {
			enc.Close()
			return fmt.Errorf("write wav: %w", err)
		}
		remaining -= n
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close wav: %w", err)
	}
	return nil
}

// RenderFile creates path and renders frames samples from e into it.
func RenderFile(path string, e *Engine, frames int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := RenderWAV(f, e, frames); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
