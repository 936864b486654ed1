package synth

import (
	"bytebeat/internal/expr"
)

// SampleFunc maps a time index to a raw sample. Only the low 8 bits of the
// integer part are heard. Implementations must not be mutated once installed.
type SampleFunc func(t int64) float64

// CompileFunc turns expression source into a SampleFunc.
type CompileFunc func(src string) (SampleFunc, error)

// CompileExpression is the default CompileFunc, backed by the expr package.
func CompileExpression(src string) (SampleFunc, error) {
	p, err := expr.Compile(src)
	if err != nil {
		return nil, err
	}
	return p.Eval, nil
}

// ByteOf returns the byte a raw sample plays as: truncated toward zero,
// wrapped to 32 bits, low 8 bits kept.
func ByteOf(raw float64) uint8 {
	return uint8(expr.ToInt32(raw) & 0xff)
}

// Normalize maps a raw sample to [-1, 1): byte 0 is -1, 128 is 0, 255 is 0.992.
func Normalize(raw float64) float32 {
	return float32(int(ByteOf(raw))-silenceByte) / silenceByte
}
