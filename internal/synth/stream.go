package synth

import "math"

// Stream adapts an Engine to the pull interfaces audio devices expose.
// Devices ask for arbitrary amounts; Stream always renders whole
// BlockFrames blocks and hands them out piecewise, so transitions still
// only take effect on block boundaries.
type Stream struct {
	eng     *Engine
	block   []float32
	pos     int
	scratch []float32
}

func NewStream(e *Engine) *Stream {
	return &Stream{
		eng:   e,
		block: make([]float32, BlockFrames),
		pos:   BlockFrames,
	}
}

// ReadFloat32 fills out with mono samples. It never fails and never ends.
func (s *Stream) ReadFloat32(out []float32) (int, error) {
	n := 0
	for n < len(out) {
		if s.pos == len(s.block) {
			s.eng.Render(s.block)
			s.pos = 0
		}
		c := copy(out[n:], s.block[s.pos:])
		s.pos += c
		n += c
	}
	return n, nil
}

// Read fills p with mono float32 little-endian samples, as oto's
// FormatFloat32LE expects. Trailing bytes that do not make a whole sample
// are left for the next call.
func (s *Stream) Read(p []byte) (int, error) {
	frames := len(p) / 4
	if frames == 0 {
		return 0, nil
	}
	if cap(s.scratch) < frames {
		s.scratch = make([]float32, frames)
	}
	samples := s.scratch[:frames]
	s.ReadFloat32(samples)
	for i, v := range samples {
		putF32(p, i, v)
	}
	return frames * 4, nil
}

// putF32 writes one float32 LE sample at frame i.
func putF32(buf []byte, i int, sample float32) {
	v := math.Float32bits(sample)
	buf[i*4] = byte(v)
	buf[i*4+1] = byte(v >> 8)
	buf[i*4+2] = byte(v >> 16)
	buf[i*4+3] = byte(v >> 24)
}
