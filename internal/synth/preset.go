package synth

// Preset song band boundaries, in t steps.
const (
	PresetBandB = 160000
	PresetBandC = 320000
	PresetEnd   = 480000
)

// Preset is the bundled three-part song. Past PresetEnd it holds the value
// of the first part at t=0 rather than restarting.
func Preset(t int64) float64 {
	return float64(PresetSample(t))
}

// PresetSample is Preset on 32-bit integers.
func PresetSample(t int64) int32 {
	switch {
	case t < PresetBandB:
		return presetA(int32(t))
	case t < PresetBandC:
		return presetB(int32(t))
	case t < PresetEnd:
		return presetC(int32(t))
	}
	return presetA(0)
}

// presetA:
// (t*((t&4096 ? (t%65536<59392 ? 7 : t&7) : 16) + (1&(t>>14)))) >> (3&(-t>>(t&2048 ? 2 : 10))) | t>>(t&16384 ? (t&4096 ? 10 : 3) : 2)
func presetA(t int32) int32 {
	var m int32 = 16
	if t&4096 != 0 {
		if t%65536 < 59392 {
			m = 7
		} else {
			m = t & 7
		}
	}
	m += 1 & (t >> 14)

	var s1 uint = 10
	if t&2048 != 0 {
		s1 = 2
	}
	var s2 uint = 2
	if t&16384 != 0 {
		if t&4096 != 0 {
			s2 = 10
		} else {
			s2 = 3
		}
	}
	return (t*m)>>uint(3&(-t>>s1)) | t>>s2
}

// presetB:
// (t*((t&4096 ? (t%65536<59392 ? 7 : t&4) : 16) ^ (1&(t>>14)))) >> (3&(-t>>(t&2048 ? 2 : 10)))
func presetB(t int32) int32 {
	var m int32 = 16
	if t&4096 != 0 {
		if t%65536 < 59392 {
			m = 7
		} else {
			m = t & 4
		}
	}
	m ^= 1 & (t >> 14)

	var s1 uint = 10
	if t&2048 != 0 {
		s1 = 2
	}
	return (t * m) >> uint(3&(-t>>s1))
}

// presetC: (t*(t>>5 | t>>8)) >> (t>>16)
func presetC(t int32) int32 {
	return (t * (t>>5 | t>>8)) >> uint((t>>16)&31)
}
