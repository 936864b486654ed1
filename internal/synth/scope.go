package synth

import "sync"

// Scope holds the waveform of the most recently rendered block. The audio
// side publishes, the renderer polls; neither waits on the other for longer
// than a copy.
type Scope struct {
	mu  sync.Mutex
	buf []float32
	seq uint64
}

// Publish replaces the stored waveform with a copy of samples.
func (s *Scope) Publish(samples []float32) {
	s.mu.Lock()
	s.buf = append(s.buf[:0], samples...)
	s.seq++
	s.mu.Unlock()
}

// Latest copies the stored waveform into dst (reusing its storage) and
// returns it with a sequence number that changes on every Publish.
func (s *Scope) Latest(dst []float32) ([]float32, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(dst[:0], s.buf...), s.seq
}

// WaveformPath returns the polyline for one block as x,y pairs: it starts at
// the vertical centre of the left edge, then visits
// (i/N*width, (sample*0.4+0.5)*height) for each sample in order.
func WaveformPath(samples []float32, width, height float32, dst []float32) []float32 {
	dst = append(dst[:0], 0, height/2)
	n := float32(len(samples))
	for i, s := range samples {
		x := float32(i) / n * width
		y := (s*0.4 + 0.5) * height
		dst = append(dst, x, y)
	}
	return dst
}
