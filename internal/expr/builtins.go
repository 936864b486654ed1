package expr

import "math"

// builtin is one whitelisted math function. Exactly one of f1, f2, fn is set;
// fn functions are variadic.
type builtin struct {
	f1 func(float64) float64
	f2 func(float64, float64) float64
	fn func([]float64) float64
}

func (b builtin) arity() int {
	switch {
	case b.f1 != nil:
		return 1
	case b.f2 != nil:
		return 2
	}
	return -1
}

// The whole capability surface of an expression: pure math, nothing else.
var builtins = map[string]builtin{
	"sin":   {f1: math.Sin},
	"cos":   {f1: math.Cos},
	"tan":   {f1: math.Tan},
	"asin":  {f1: math.Asin},
	"acos":  {f1: math.Acos},
	"atan":  {f1: math.Atan},
	"sinh":  {f1: math.Sinh},
	"cosh":  {f1: math.Cosh},
	"tanh":  {f1: math.Tanh},
	"asinh": {f1: math.Asinh},
	"acosh": {f1: math.Acosh},
	"atanh": {f1: math.Atanh},
	"sqrt":  {f1: math.Sqrt},
	"cbrt":  {f1: math.Cbrt},
	"abs":   {f1: math.Abs},
	"floor": {f1: math.Floor},
	"ceil":  {f1: math.Ceil},
	"round": {f1: round},
	"trunc": {f1: math.Trunc},
	"sign":  {f1: sign},
	"exp":   {f1: math.Exp},
	"expm1": {f1: math.Expm1},
	"log":   {f1: math.Log},
	"log1p": {f1: math.Log1p},
	"log2":  {f1: math.Log2},
	"log10": {f1: math.Log10},
	"atan2": {f2: math.Atan2},
	"pow":   {f2: pow},
	"imul": {f2: func(a, b float64) float64 {
		return float64(ToInt32(a) * ToInt32(b))
	}},
	"min": {fn: func(args []float64) float64 {
		r := math.Inf(1)
		for _, a := range args {
			if math.IsNaN(a) {
				return a
			}
			r = math.Min(r, a)
		}
		return r
	}},
	"max": {fn: func(args []float64) float64 {
		r := math.Inf(-1)
		for _, a := range args {
			if math.IsNaN(a) {
				return a
			}
			r = math.Max(r, a)
		}
		return r
	}},
	"hypot": {fn: func(args []float64) float64 {
		r := 0.0
		for _, a := range args {
			r = math.Hypot(r, a)
		}
		return r
	}},
}

var constants = map[string]float64{
	"PI":      math.Pi,
	"E":       math.E,
	"LN2":     math.Ln2,
	"LN10":    math.Ln10,
	"LOG2E":   math.Log2E,
	"LOG10E":  math.Log10E,
	"SQRT2":   math.Sqrt2,
	"SQRT1_2": math.Sqrt2 / 2,
}
