package expr

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestEval(t *testing.T) {
	tests := []struct {
		src  string
		t    int64
		want float64
	}{
		{"t & 255", 300, 44},
		{"t*(t>>5|t>>8)", 1000, 31000},
		{"t>>4 | t*3", 16, 49},
		{"1+2*3", 0, 7},
		{"(1+2)*3", 0, 9},
		{"2**3**2", 0, 512},
		{"t%3", 7, 1},
		{"-7 % 3", 0, -1},
		{"t ? 1 : 2", 0, 2},
		{"t ? 1 : 2", 5, 1},
		{"t<5 ? 1 : t<10 ? 2 : 3", 7, 2},
		{"-1>>>28", 0, 15},
		{"-1>>28", 0, -1},
		{"1<<31", 0, -2147483648},
		{"1<<32", 0, 1},
		{"~0", 0, -1},
		{"!0", 0, 1},
		{"!5", 0, 0},
		{"5^3", 0, 6},
		{"Math.floor(t/3)", 10, 3},
		{"floor(t/3)", 10, 3},
		{"sin(0)", 0, 0},
		{"max(1, 5, 3)", 0, 5},
		{"min(4, t)", 2, 2},
		{"round(2.5)", 0, 3},
		{"round(-2.5)", 0, -2},
		{"sign(-t)", 4, -1},
		{"imul(65536, 65536)", 0, 0},
		{"0x10", 0, 16},
		{"1e3", 0, 1000},
		{".5+.5", 0, 1},
		{"t;", 9, 9},
		{"3 || 4", 0, 3},
		{"0 || 4", 0, 4},
		{"0 && 4", 0, 0},
		{"2 && 4", 0, 4},
		{"1==1", 0, 1},
		{"1 === 2", 0, 0},
		{"1 != 2", 0, 1},
		{"t >= 3", 3, 1},
		{"-t", 4, -4},
		{"+t", 4, 4},
		{"2.5*2", 0, 5},
		{"pow(2, 10)", 0, 1024},
		{"hypot(3, 4)", 0, 5},
		{"Math.PI", 0, math.Pi},
	}
	for _, tc := range tests {
		p, err := Compile(tc.src)
		if err != nil {
			t.Errorf("Compile(%q): %v", tc.src, err)
			continue
		}
		if got := p.Eval(tc.t); got != tc.want {
			t.Errorf("%q at t=%d = %v, want %v", tc.src, tc.t, got, tc.want)
		}
	}
}

func TestEvalNonFinite(t *testing.T) {
	p := MustCompile("t/0")
	if v := p.Eval(1); !math.IsInf(v, 1) {
		t.Errorf("1/0 = %v, want +Inf", v)
	}
	if v := p.Eval(0); !math.IsNaN(v) {
		t.Errorf("0/0 = %v, want NaN", v)
	}
	if v := MustCompile("min()").Eval(0); !math.IsInf(v, 1) {
		t.Errorf("min() = %v, want +Inf", v)
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"unclosed", "((t)", "unbalanced parenthesis"},
		{"extra close", "t)", "unbalanced parenthesis"},
		{"leading close", ")", "unbalanced parenthesis"},
		{"empty", "", "empty expression"},
		{"blank", "   ", "empty expression"},
		{"dangling operator", "t +", "expected operand"},
		{"unknown identifier", "foo", "unknown identifier"},
		{"uncalled function", "sin", "must be called"},
		{"too many args", "sin(1,2)", "takes 1 argument"},
		{"too few args", "atan2(1)", "takes 2 argument"},
		{"bad character", "t @ 2", "unexpected character"},
		{"number then ident", "1t", "identifier directly after number"},
		{"bare Math", "Math.", "member name"},
		{"unknown Math member", "Math.foo(1)", "unknown function"},
		{"random with args", "random(1)", "no arguments"},
		{"incomplete conditional", "t ? 1", `":"`},
		{"member access", "process.exit()", "unknown identifier"},
		{"string literal", "require('fs')", "unexpected character"},
		{"juxtaposition", "t t", "expected end of expression"},
		{"missing comma", "max(1 2)", `expected "," or ")"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compile(tc.src)
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("Compile(%q) error = %v, want *SyntaxError", tc.src, err)
			}
			if !strings.Contains(se.Msg, tc.msg) {
				t.Errorf("Compile(%q) message %q does not mention %q", tc.src, se.Msg, tc.msg)
			}
		})
	}
}

func TestCompileLimits(t *testing.T) {
	long := strings.Repeat("t+", MaxSourceLen) + "t"
	if _, err := Compile(long); err == nil {
		t.Error("over-long expression compiled")
	}
	deep := strings.Repeat("(", maxDepth+10) + "t" + strings.Repeat(")", maxDepth+10)
	if _, err := Compile(deep); err == nil {
		t.Error("deeply nested expression compiled")
	}
	ok := strings.Repeat("(", 50) + "t" + strings.Repeat(")", 50)
	if _, err := Compile(ok); err != nil {
		t.Errorf("moderately nested expression rejected: %v", err)
	}
}

func TestRandom(t *testing.T) {
	a := MustCompile("random()")
	b := MustCompile("Math.random()")
	first := a.Eval(0)
	if first < 0 || first >= 1 {
		t.Fatalf("random() = %v, want [0,1)", first)
	}
	if second := a.Eval(0); second == first {
		t.Errorf("random() repeated %v", first)
	}
	// Fresh programs start from the same seed.
	if got := b.Eval(0); got != first {
		t.Errorf("fresh program random() = %v, want %v", got, first)
	}
}

func TestToInt32(t *testing.T) {
	tests := []struct {
		in   float64
		want int32
	}{
		{0, 0},
		{255.9, 255},
		{-1.5, -1},
		{2147483648, -2147483648},
		{4294967296, 0},
		{4294967297, 1},
		{-4294967297, -1},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
	}
	for _, tc := range tests {
		if got := ToInt32(tc.in); got != tc.want {
			t.Errorf("ToInt32(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
	if got := ToUint32(-1); got != math.MaxUint32 {
		t.Errorf("ToUint32(-1) = %d", got)
	}
}

func TestSource(t *testing.T) {
	const src = "t*(t>>8|t>>9)"
	if got := MustCompile(src).Source(); got != src {
		t.Errorf("Source() = %q", got)
	}
}

func BenchmarkEval(b *testing.B) {
	p := MustCompile("(t*(t>>5|t>>8))>>(t>>16)")
	for i := 0; i < b.N; i++ {
		_ = p.Eval(int64(i))
	}
}
