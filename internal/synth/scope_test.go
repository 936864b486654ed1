package synth

import "testing"

func TestWaveformPath(t *testing.T) {
	got := WaveformPath([]float32{-1, 0, 1, 0.5}, 800, 200, nil)
	want := []float32{
		0, 100,
		0, 20,
		200, 100,
		400, 180,
		600, 140,
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if diff := got[i] - want[i]; diff > 1e-4 || diff < -1e-4 {
			t.Errorf("coord %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWaveformPathEmpty(t *testing.T) {
	got := WaveformPath(nil, 640, 480, make([]float32, 10))
	if len(got) != 2 || got[0] != 0 || got[1] != 240 {
		t.Errorf("empty block path = %v", got)
	}
}

func TestScopeLatest(t *testing.T) {
	var s Scope
	buf, seq0 := s.Latest(nil)
	if len(buf) != 0 {
		t.Fatalf("fresh scope holds %v", buf)
	}

	src := []float32{0.1, 0.2}
	s.Publish(src)
	src[0] = 9

	buf, seq1 := s.Latest(buf)
	if seq1 == seq0 {
		t.Error("sequence did not advance")
	}
	if len(buf) != 2 || buf[0] != 0.1 {
		t.Errorf("Latest = %v, want a copy of the published block", buf)
	}
}
