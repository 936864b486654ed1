package synth

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestStreamTransitionsOnBlockBoundary(t *testing.T) {
	e := NewEngine(DefaultSampleRate, nil)
	if err := e.Play("t & 255"); err != nil {
		t.Fatal(err)
	}
	s := NewStream(e)

	head := make([]float32, 100)
	if n, err := s.ReadFloat32(head); n != 100 || err != nil {
		t.Fatalf("ReadFloat32 = %d, %v", n, err)
	}

	e.PlayPreset()

	// The rest of the already rendered block still plays the user ramp.
	rest := make([]float32, BlockFrames-100)
	s.ReadFloat32(rest)
	for i, v := range rest {
		if want := Normalize(float64(100 + i)); v != want {
			t.Fatalf("frame %d = %v, want %v", 100+i, v, want)
		}
	}

	next := make([]float32, 3)
	s.ReadFloat32(next)
	for i, v := range next {
		if want := Normalize(Preset(int64(i))); v != want {
			t.Errorf("preset frame %d = %v, want %v", i, v, want)
		}
	}
}

func TestStreamReadBytes(t *testing.T) {
	e := NewEngine(DefaultSampleRate, nil)
	if err := e.Play("t + 130"); err != nil {
		t.Fatal(err)
	}
	s := NewStream(e)

	p := make([]byte, 10)
	n, err := s.Read(p)
	if err != nil || n != 8 {
		t.Fatalf("Read = %d, %v; want 8 bytes", n, err)
	}
	for i := 0; i < 2; i++ {
		got := math.Float32frombits(binary.LittleEndian.Uint32(p[i*4:]))
		if want := Normalize(float64(130 + i)); got != want {
			t.Errorf("sample %d = %v, want %v", i, got, want)
		}
	}

	if n, _ := s.Read(p[:3]); n != 0 {
		t.Errorf("short buffer read %d bytes", n)
	}
}
