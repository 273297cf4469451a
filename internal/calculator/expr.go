package calculator

import (
	"math"
	"strconv"
	"strings"
)

// MathRequest evaluates an arithmetic expression. AngleMode is "degrees"
// (the default) or "radians" and controls the trigonometric functions.
type MathRequest struct {
	Expression string `json:"expression"`
	AngleMode  string `json:"angle_mode,omitempty"`
}

type MathResult struct {
	Result     float64 `json:"result"`
	Expression string  `json:"expression"`
}

func ComputeMath(req MathRequest) (MathResult, error) {
	expr := strings.TrimSpace(req.Expression)
	if expr == "" {
		return MathResult{}, invalidf("expression", "must not be empty")
	}
	if len(expr) > 500 {
		return MathResult{}, invalidf("expression", "too long")
	}

	degrees := true
	switch strings.ToLower(strings.TrimSpace(req.AngleMode)) {
	case "", "degrees":
	case "radians":
		degrees = false
	default:
		return MathResult{}, invalidf("angle_mode", "must be degrees or radians")
	}

	p := &exprParser{input: insertImplicitMul(expr), degrees: degrees}
	value, err := p.parse()
	if err != nil {
		return MathResult{}, err
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return MathResult{}, domainf("expression has no finite result")
	}

	return MathResult{Result: value, Expression: expr}, nil
}

// insertImplicitMul rewrites shorthand like 2(3+4), (1+2)(3+4) and (2)3
// into explicit multiplication before parsing.
func insertImplicitMul(expr string) string {
	var b strings.Builder
	b.Grow(len(expr) + 4)
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		if i > 0 {
			prev := expr[i-1]
			if (c == '(' && (isDigit(prev) || prev == ')')) ||
				(isDigit(c) && prev == ')') {
				b.WriteByte('*')
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// exprParser is a recursive descent parser over the grammar
//
//	expr   = term { ("+" | "-") term }
//	term   = unary { ("*" | "/" | "%") unary }
//	unary  = ["-" | "+"] power
//	power  = postfix [ "^" unary ]
//	postfix = atom { "!" }
//	atom   = number | name | name "(" expr ")" | "(" expr ")"
type exprParser struct {
	input   string
	pos     int
	degrees bool
}

func (p *exprParser) parse() (float64, error) {
	value, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return 0, invalidf("expression", "unexpected character %q at position %d", p.input[p.pos], p.pos)
	}
	return value, nil
}

func (p *exprParser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		switch {
		case p.consume('+'):
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left += right
		case p.consume('-'):
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		switch {
		case p.consume('*'):
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			left *= right
		case p.consume('/'):
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, domainf("division by zero")
			}
			left /= right
		case p.consume('%'):
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, domainf("modulo by zero")
			}
			left = math.Mod(left, right)
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseUnary() (float64, error) {
	p.skipSpace()
	if p.consume('-') {
		value, err := p.parseUnary()
		return -value, err
	}
	p.consume('+')
	return p.parsePower()
}

func (p *exprParser) parsePower() (float64, error) {
	base, err := p.parsePostfix()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.consume('^') {
		// Right associative.
		exp, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return math.Pow(base, exp), nil
	}
	return base, nil
}

func (p *exprParser) parsePostfix() (float64, error) {
	value, err := p.parseAtom()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		if !p.consume('!') {
			return value, nil
		}
		value, err = factorial(value)
		if err != nil {
			return 0, err
		}
	}
}

func (p *exprParser) parseAtom() (float64, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0, invalidf("expression", "unexpected end of expression")
	}

	c := p.input[p.pos]

	if c == '(' {
		p.pos++
		value, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		p.skipSpace()
		if !p.consume(')') {
			return 0, invalidf("expression", "missing closing parenthesis")
		}
		return value, nil
	}

	if c >= '0' && c <= '9' || c == '.' {
		return p.parseNumber()
	}

	if isLetter(c) {
		return p.parseName()
	}

	return 0, invalidf("expression", "unexpected character %q at position %d", c, p.pos)
}

func (p *exprParser) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c >= '0' && c <= '9' || c == '.' {
			p.pos++
			continue
		}
		break
	}
	value, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, invalidf("expression", "invalid number %q", p.input[start:p.pos])
	}
	return value, nil
}

func (p *exprParser) parseName() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) && isLetter(p.input[p.pos]) {
		p.pos++
	}
	name := p.input[start:p.pos]

	switch name {
	case "pi":
		return math.Pi, nil
	case "e":
		return math.E, nil
	}

	p.skipSpace()
	if !p.consume('(') {
		return 0, invalidf("expression", "unknown identifier %q", name)
	}
	arg, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if !p.consume(')') {
		return 0, invalidf("expression", "missing closing parenthesis after %s", name)
	}

	return p.applyFunc(name, arg)
}

func (p *exprParser) applyFunc(name string, arg float64) (float64, error) {
	trigIn := func(v float64) float64 {
		if p.degrees {
			return v * math.Pi / 180
		}
		return v
	}
	trigOut := func(v float64) float64 {
		if p.degrees {
			return v * 180 / math.Pi
		}
		return v
	}

	switch name {
	case "sin":
		return math.Sin(trigIn(arg)), nil
	case "cos":
		return math.Cos(trigIn(arg)), nil
	case "tan":
		return math.Tan(trigIn(arg)), nil
	case "asin":
		if arg < -1 || arg > 1 {
			return 0, domainf("asin argument out of range")
		}
		return trigOut(math.Asin(arg)), nil
	case "acos":
		if arg < -1 || arg > 1 {
			return 0, domainf("acos argument out of range")
		}
		return trigOut(math.Acos(arg)), nil
	case "atan":
		return trigOut(math.Atan(arg)), nil
	case "sqrt":
		if arg < 0 {
			return 0, domainf("square root of a negative number")
		}
		return math.Sqrt(arg), nil
	case "cbrt":
		return math.Cbrt(arg), nil
	case "log":
		if arg <= 0 {
			return 0, domainf("logarithm of a non-positive number")
		}
		return math.Log10(arg), nil
	case "ln":
		if arg <= 0 {
			return 0, domainf("logarithm of a non-positive number")
		}
		return math.Log(arg), nil
	case "exp":
		return math.Exp(arg), nil
	case "abs":
		return math.Abs(arg), nil
	case "floor":
		return math.Floor(arg), nil
	case "ceil":
		return math.Ceil(arg), nil
	case "round":
		return math.Round(arg), nil
	default:
		return 0, invalidf("expression", "unknown function %q", name)
	}
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *exprParser) consume(c byte) bool {
	if p.pos < len(p.input) && p.input[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func factorial(v float64) (float64, error) {
	if v < 0 || v != math.Trunc(v) {
		return 0, domainf("factorial requires a non-negative integer")
	}
	if v > 170 {
		return 0, domainf("factorial overflows")
	}
	result := 1.0
	for i := 2.0; i <= v; i++ {
		result *= i
	}
	return result, nil
}
