package expr

import (
	"math"
	"strconv"
)

// node is a compiled sub-expression evaluated at time t.
type node func(t float64) float64

// maxDepth bounds recursion so pathological input like "((((...)))" is
// rejected instead of exhausting the stack.
const maxDepth = 200

type parser struct {
	toks  []token
	pos   int
	depth int
	prog  *Program
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) isOp(text string) bool {
	tok := p.peek()
	return tok.kind == tokOp && tok.text == text
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	tok := p.next()
	if tok.kind != kind {
		return tok, p.errAt(tok, "expected "+what)
	}
	return tok, nil
}

func (p *parser) errAt(tok token, msg string) error {
	if tok.kind == tokEOF {
		return &SyntaxError{Pos: tok.pos, Msg: msg + ", found end of input"}
	}
	return &SyntaxError{Pos: tok.pos, Msg: msg + ", found " + strconv.Quote(tok.text)}
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > maxDepth {
		return &SyntaxError{Pos: p.peek().pos, Msg: "expression nested too deeply"}
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

// parseProgram parses a single expression, optionally followed by semicolons.
func (p *parser) parseProgram() (node, error) {
	if p.peek().kind == tokEOF {
		return nil, &SyntaxError{Pos: 0, Msg: "empty expression"}
	}
	n, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokSemi {
		p.next()
	}
	if tok := p.peek(); tok.kind != tokEOF {
		if tok.kind == tokRParen {
			return nil, &SyntaxError{Pos: tok.pos, Msg: "unbalanced parenthesis"}
		}
		return nil, p.errAt(tok, "expected end of expression")
	}
	return n, nil
}

func (p *parser) parseConditional() (node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	cond, err := p.parseBinary(1)
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokQuestion {
		return cond, nil
	}
	p.next()
	a, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokColon, `":" in conditional`); err != nil {
		return nil, err
	}
	b, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	return func(t float64) float64 {
		if truthy(cond(t)) {
			return a(t)
		}
		return b(t)
	}, nil
}

// Binary precedence, loosest first. "**" is handled by parseExponent.
var precedence = map[string]int{
	"||": 1,
	"&&": 2,
	"|":  3,
	"^":  4,
	"&":  5,
	"==": 6, "!=": 6, "===": 6, "!==": 6,
	"<": 7, "<=": 7, ">": 7, ">=": 7,
	"<<": 8, ">>": 8, ">>>": 8,
	"+": 9, "-": 9,
	"*": 10, "/": 10, "%": 10,
}

func (p *parser) parseBinary(minPrec int) (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokOp {
			return left, nil
		}
		prec, ok := precedence[tok.text]
		if !ok || prec < minPrec {
			return left, nil
		}
		p.next()
		right, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		left = binary(tok.text, left, right)
	}
}

func binary(op string, a, b node) node {
	switch op {
	case "||":
		return func(t float64) float64 {
			if v := a(t); truthy(v) {
				return v
			}
			return b(t)
		}
	case "&&":
		return func(t float64) float64 {
			if v := a(t); !truthy(v) {
				return v
			}
			return b(t)
		}
	case "|":
		return func(t float64) float64 { return float64(ToInt32(a(t)) | ToInt32(b(t))) }
	case "^":
		return func(t float64) float64 { return float64(ToInt32(a(t)) ^ ToInt32(b(t))) }
	case "&":
		return func(t float64) float64 { return float64(ToInt32(a(t)) & ToInt32(b(t))) }
	case "==", "===":
		return func(t float64) float64 { return boolNum(a(t) == b(t)) }
	case "!=", "!==":
		return func(t float64) float64 { return boolNum(a(t) != b(t)) }
	case "<":
		return func(t float64) float64 { return boolNum(a(t) < b(t)) }
	case "<=":
		return func(t float64) float64 { return boolNum(a(t) <= b(t)) }
	case ">":
		return func(t float64) float64 { return boolNum(a(t) > b(t)) }
	case ">=":
		return func(t float64) float64 { return boolNum(a(t) >= b(t)) }
	case "<<":
		return func(t float64) float64 { return float64(ToInt32(a(t)) << (ToUint32(b(t)) & 31)) }
	case ">>":
		return func(t float64) float64 { return float64(ToInt32(a(t)) >> (ToUint32(b(t)) & 31)) }
	case ">>>":
		return func(t float64) float64 { return float64(ToUint32(a(t)) >> (ToUint32(b(t)) & 31)) }
	case "+":
		return func(t float64) float64 { return a(t) + b(t) }
	case "-":
		return func(t float64) float64 { return a(t) - b(t) }
	case "*":
		return func(t float64) float64 { return a(t) * b(t) }
	case "/":
		return func(t float64) float64 { return a(t) / b(t) }
	case "%":
		return func(t float64) float64 { return math.Mod(a(t), b(t)) }
	}
	panic("expr: unhandled operator " + op)
}

func (p *parser) parseUnary() (node, error) {
	tok := p.peek()
	if tok.kind != tokOp {
		return p.parseExponent()
	}
	switch tok.text {
	case "-", "+", "~", "!":
	default:
		return nil, p.errAt(tok, "expected operand")
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	p.next()
	x, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	switch tok.text {
	case "-":
		return func(t float64) float64 { return -x(t) }, nil
	case "+":
		return x, nil
	case "~":
		return func(t float64) float64 { return float64(^ToInt32(x(t))) }, nil
	default:
		return func(t float64) float64 { return boolNum(!truthy(x(t))) }, nil
	}
}

// parseExponent handles the right-associative "**".
func (p *parser) parseExponent() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if !p.isOp("**") {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return func(t float64) float64 { return pow(base(t), exp(t)) }, nil
}

func (p *parser) parsePrimary() (node, error) {
	tok := p.next()
	switch tok.kind {
	case tokNumber:
		v := tok.num
		return func(float64) float64 { return v }, nil
	case tokLParen:
		inner, err := p.parseConditional()
		if err != nil {
			return nil, err
		}
		switch next := p.next(); next.kind {
		case tokRParen:
			return inner, nil
		case tokEOF:
			return nil, &SyntaxError{Pos: tok.pos, Msg: "unbalanced parenthesis"}
		default:
			return nil, p.errAt(next, `expected ")"`)
		}
	case tokIdent:
		return p.parseIdent(tok)
	case tokRParen:
		return nil, &SyntaxError{Pos: tok.pos, Msg: "unbalanced parenthesis"}
	}
	return nil, p.errAt(tok, "expected operand")
}

func (p *parser) parseIdent(tok token) (node, error) {
	name := tok.text
	if name == "Math" {
		if _, err := p.expect(tokDot, `"." after Math`); err != nil {
			return nil, err
		}
		member, err := p.expect(tokIdent, "member name after Math.")
		if err != nil {
			return nil, err
		}
		tok, name = member, member.text
	} else if name == "t" {
		return func(t float64) float64 { return t }, nil
	}

	if v, ok := constants[name]; ok {
		return func(float64) float64 { return v }, nil
	}
	if p.peek().kind != tokLParen {
		if _, ok := builtins[name]; ok || name == "random" {
			return nil, &SyntaxError{Pos: tok.pos, Msg: "function " + name + " must be called"}
		}
		return nil, &SyntaxError{Pos: tok.pos, Msg: "unknown identifier " + strconv.Quote(name)}
	}
	if name == "random" {
		open := p.next()
		if p.peek().kind != tokRParen {
			return nil, &SyntaxError{Pos: open.pos, Msg: "random takes no arguments"}
		}
		p.next()
		prog := p.prog
		return func(float64) float64 { return prog.random() }, nil
	}
	fn, ok := builtins[name]
	if !ok {
		return nil, &SyntaxError{Pos: tok.pos, Msg: "unknown function " + strconv.Quote(name)}
	}
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	if n := fn.arity(); n >= 0 && len(args) != n {
		return nil, &SyntaxError{Pos: tok.pos, Msg: name + " takes " + strconv.Itoa(n) + " argument(s), got " + strconv.Itoa(len(args))}
	}
	switch {
	case fn.f1 != nil:
		f, x := fn.f1, args[0]
		return func(t float64) float64 { return f(x(t)) }, nil
	case fn.f2 != nil:
		f, x, y := fn.f2, args[0], args[1]
		return func(t float64) float64 { return f(x(t), y(t)) }, nil
	}
	f := fn.fn
	return func(t float64) float64 {
		vals := make([]float64, len(args))
		for i, a := range args {
			vals[i] = a(t)
		}
		return f(vals)
	}, nil
}

func (p *parser) parseArgs() ([]node, error) {
	open, err := p.expect(tokLParen, `"("`)
	if err != nil {
		return nil, err
	}
	var args []node
	if p.peek().kind == tokRParen {
		p.next()
		return args, nil
	}
	for {
		arg, err := p.parseConditional()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		switch tok := p.next(); tok.kind {
		case tokComma:
			continue
		case tokRParen:
			return args, nil
		case tokEOF:
			return nil, &SyntaxError{Pos: open.pos, Msg: "unbalanced parenthesis"}
		default:
			return nil, p.errAt(tok, `expected "," or ")"`)
		}
	}
}
