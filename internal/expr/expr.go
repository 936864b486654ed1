// Package expr compiles bytebeat expressions into sample functions.
//
// The language is the small, side-effect free expression syntax bytebeat
// formulas are conventionally shared in: numbers, the time variable t,
// arithmetic, bitwise and comparison operators, the conditional operator and
// a fixed set of Math functions and constants, callable with or without the
// "Math." prefix. Bitwise operators use 32-bit two's-complement semantics.
package expr

import "fmt"

// MaxSourceLen is the longest expression Compile accepts.
const MaxSourceLen = 4096

// SyntaxError reports why source text was rejected.
type SyntaxError struct {
	Pos int // byte offset into the source
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}

// Program is a compiled expression. Eval is not safe for concurrent use
// because random() keeps per-program state.
type Program struct {
	src  string
	root node
	rng  uint64
}

// Compile parses src once into a closure tree.
func Compile(src string) (*Program, error) {
	if len(src) > MaxSourceLen {
		return nil, &SyntaxError{Pos: MaxSourceLen, Msg: fmt.Sprintf("expression longer than %d bytes", MaxSourceLen)}
	}
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	prog := &Program{src: src, rng: 0x9E3779B97F4A7C15}
	p := &parser{toks: toks, prog: prog}
	root, err := p.parseProgram()
	if err != nil {
		return nil, err
	}
	prog.root = root
	return prog, nil
}

// MustCompile is Compile for expressions known to be valid.
func MustCompile(src string) *Program {
	p, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return p
}

// Source returns the text the program was compiled from.
func (p *Program) Source() string { return p.src }

// Eval evaluates the expression at time index t. The result may be any
// float64, including NaN and the infinities.
func (p *Program) Eval(t int64) float64 {
	return p.root(float64(t))
}

// random returns a value in [0,1) from an xorshift64* stream.
func (p *Program) random() float64 {
	x := p.rng
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	p.rng = x
	return float64((x*2685821657736338717)>>11) / (1 << 53)
}
