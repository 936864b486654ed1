package synth

import "testing"

func TestPresetGolden(t *testing.T) {
	tests := []struct {
		t    int64
		want int32
	}{
		{0, 0},
		{1, 2},
		{100, 217},
		{2048, 33280},
		{4096, 29696},
		{5000, 5623},
		{16384, 280576},
		{20000, 342500},
		{61000, 261627},
		{159999, 159999},
		{160000, 120000},
		{200000, 3200000},
		{319999, 679997},
		{320000, -63915456},
		{400000, 20678636},
		{479999, -5822742},
		{480000, 0},
		{10000000, 0},
	}
	for _, tc := range tests {
		if got := PresetSample(tc.t); got != tc.want {
			t.Errorf("PresetSample(%d) = %d, want %d", tc.t, got, tc.want)
		}
	}
}

func TestPresetBands(t *testing.T) {
	tests := []struct {
		name  string
		t     int64
		part  func(int32) int32
		other func(int32) int32
	}{
		{"last of A", 159999, presetA, presetB},
		{"first of B", 160000, presetB, presetA},
		{"last of B", 319999, presetB, presetC},
		{"first of C", 320000, presetC, presetB},
		{"last of C", 479999, presetC, presetB},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PresetSample(tc.t)
			if want := tc.part(int32(tc.t)); got != want {
				t.Errorf("PresetSample(%d) = %d, want %d", tc.t, got, want)
			}
			if wrong := tc.other(int32(tc.t)); got == wrong {
				t.Errorf("PresetSample(%d) = %d, indistinguishable from neighbouring band", tc.t, got)
			}
		})
	}

	// Past the end the song holds A(0), not A(t).
	for _, tt := range []int64{PresetEnd, PresetEnd + 1, PresetEnd + 212, 1 << 40} {
		if got := PresetSample(tt); got != presetA(0) {
			t.Errorf("PresetSample(%d) = %d, want A(0) = %d", tt, got, presetA(0))
		}
	}
	if presetA(PresetEnd) == presetA(0) {
		t.Fatal("A(480000) equals A(0); the end-of-song check proves nothing")
	}
}

func TestPresetPure(t *testing.T) {
	for tt := int64(0); tt < PresetEnd+1000; tt += 977 {
		a, b := Preset(tt), Preset(tt)
		if a != b {
			t.Fatalf("Preset(%d) not deterministic: %v then %v", tt, a, b)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  float64
		want float32
	}{
		{0, -1},
		{128, 0},
		{255, 127.0 / 128},
		{511, 127.0 / 128},
		{-1, 127.0 / 128},
		{256, -1},
		{64, -0.5},
		{200.9, 72.0 / 128},
		{-63915456, (64.0 - 128) / 128},
	}
	for _, tc := range tests {
		if got := Normalize(tc.raw); got != tc.want {
			t.Errorf("Normalize(%v) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
