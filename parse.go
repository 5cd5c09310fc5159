package calc

import "math"

// The grammar, lowest to highest precedence. Each rule is one parser method,
// and each method returns the value of what it matched, so precedence and
// evaluation both fall out of the call structure.
//
// program    = statement {';' statement}
// statement  = assignment | expression
// assignment = Ident '=' expression
// expression = term {('+' | '-') term}
// term       = power {('*' | '/' | '%') power}
// power      = unary ['^' power]
// unary      = '-' unary | primary
// primary    = Num | Ident | Func '(' [expression] ')' | '(' expression ')'

type parser struct {
	scan *lexer
	tok  token
	vars map[string]float64
}

// newParser creates a parser owning vars for the duration of the parse and
// primes the one-token lookahead.
func newParser(scan *lexer, vars map[string]float64) (*parser, error) {
	p := &parser{scan: scan, vars: vars}
	return p, p.next()
}

// next advances the buffered token.
func (p *parser) next() error {
	tok, err := p.scan.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// eat consumes the current token if it has the expected kind and advances.
func (p *parser) eat(kind tokenKind) error {
	if p.tok.kind != kind {
		return &ParseError{Col: p.tok.pos, Want: kind, Got: p.tok.text}
	}
	return p.next()
}

// program parses the whole input and returns the value of its last
// statement. A trailing semicolon before the end of input is allowed.
func (p *parser) program() (float64, error) {
	r, err := p.statement()
	if err != nil {
		return 0, err
	}
	for p.tok.kind == tokenSemi {
		if err := p.next(); err != nil {
			return 0, err
		}
		if p.tok.kind == tokenEOF {
			break
		}
		r, err = p.statement()
		if err != nil {
			return 0, err
		}
	}
	if p.tok.kind != tokenEOF {
		return 0, &ParseError{Col: p.tok.pos, Got: p.tok.text}
	}
	return r, nil
}

// statement parses an assignment or an expression. Both can begin with an
// identifier, so it reads one more token from the lexer to check for '=' and
// pushes it back when the statement turns out to be a plain expression. The
// current token plus the lexer's push-back slot form the two-token buffer;
// the lexer itself is never copied or rewound.
func (p *parser) statement() (float64, error) {
	if p.tok.kind != tokenIdent {
		return p.expression()
	}
	la, err := p.scan.next()
	if err != nil {
		return 0, err
	}
	if la.kind != tokenAssign {
		p.scan.push(la)
		return p.expression()
	}
	// The identifier and the '=' are both consumed; move to the value.
	name := p.tok.text
	if err := p.next(); err != nil {
		return 0, err
	}
	v, err := p.expression()
	if err != nil {
		return 0, err
	}
	p.vars[name] = v
	return v, nil
}

// expression parses a left-to-right fold of terms joined by '+' and '-'.
func (p *parser) expression() (float64, error) {
	r, err := p.term()
	if err != nil {
		return 0, err
	}
	for p.tok.kind == tokenPlus || p.tok.kind == tokenMinus {
		op := p.tok.kind
		if err := p.next(); err != nil {
			return 0, err
		}
		rhs, err := p.term()
		if err != nil {
			return 0, err
		}
		if op == tokenPlus {
			r += rhs
		} else {
			r -= rhs
		}
	}
	return r, nil
}

// term parses a left-to-right fold of powers joined by '*', '/', and '%'.
// Division and modulo by zero are not rejected; IEEE-754 infinities and NaNs
// propagate through the result.
func (p *parser) term() (float64, error) {
	r, err := p.power()
	if err != nil {
		return 0, err
	}
	for p.tok.kind == tokenStar || p.tok.kind == tokenSlash || p.tok.kind == tokenPercent {
		op := p.tok.kind
		if err := p.next(); err != nil {
			return 0, err
		}
		rhs, err := p.power()
		if err != nil {
			return 0, err
		}
		switch op {
		case tokenStar:
			r *= rhs
		case tokenSlash:
			r /= rhs
		default:
			r = math.Mod(r, rhs)
		}
	}
	return r, nil
}

// power parses exponentiation, right-associative by recursing into itself
// for the right operand: 2^3^2 is 2^(3^2). The left operand is a unary, so
// -2^2 is (-2)^2; see the package documentation.
func (p *parser) power() (float64, error) {
	r, err := p.unary()
	if err != nil {
		return 0, err
	}
	if p.tok.kind == tokenCaret {
		if err := p.next(); err != nil {
			return 0, err
		}
		rhs, err := p.power()
		if err != nil {
			return 0, err
		}
		r = math.Pow(r, rhs)
	}
	return r, nil
}

// unary parses any number of leading minus signs.
func (p *parser) unary() (float64, error) {
	if p.tok.kind == tokenMinus {
		if err := p.next(); err != nil {
			return 0, err
		}
		v, err := p.unary()
		return -v, err
	}
	return p.primary()
}

// primary parses a literal, a variable, a builtin call, or a parenthesized
// expression.
func (p *parser) primary() (float64, error) {
	switch p.tok.kind {
	case tokenNum:
		v := p.tok.num
		return v, p.next()
	case tokenIdent:
		name, col := p.tok.text, p.tok.pos
		if err := p.next(); err != nil {
			return 0, err
		}
		v, ok := p.vars[name]
		if !ok {
			return 0, &UndefinedVariableError{Col: col, Name: name}
		}
		return v, nil
	case tokenFunc:
		return p.call()
	case tokenOpen:
		if err := p.next(); err != nil {
			return 0, err
		}
		v, err := p.expression()
		if err != nil {
			return 0, err
		}
		return v, p.eat(tokenClose)
	default:
		return 0, &ParseError{Col: p.tok.pos, Got: p.tok.text}
	}
}

// call parses a builtin invocation. Constants take empty parentheses;
// functions take exactly one argument expression.
func (p *parser) call() (float64, error) {
	name, col := p.tok.text, p.tok.pos
	if err := p.next(); err != nil {
		return 0, err
	}
	if err := p.eat(tokenOpen); err != nil {
		return 0, err
	}
	fn, ok := builtins[name]
	if !ok {
		return 0, &UnknownFunctionError{Col: col, Name: name}
	}
	var arg float64
	if fn.arity == 1 {
		v, err := p.expression()
		if err != nil {
			return 0, err
		}
		arg = v
	}
	if err := p.eat(tokenClose); err != nil {
		return 0, err
	}
	return fn.call(arg), nil
}
