package synth

// Audio block layout.
const (
	BlockFrames       = 512  // frames rendered per callback
	DefaultSampleRate = 8000 // t steps per second of audio
)

// Transport ranges.
const (
	MaxSpeed      = 2.0
	SpeedStep     = 0.05
	VolumeStep    = 0.05
	DefaultSpeed  = 1.0
	DefaultVolume = 1.0
)

// GainTimeConstant is the volume smoothing time constant in seconds.
const GainTimeConstant = 0.01

// silenceByte is the byte value that normalizes to 0.0.
const silenceByte = 128
