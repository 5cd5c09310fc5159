package calc

import (
	"strconv"
	"strings"
	"unicode"
)

type token struct {
	text string
	kind tokenKind
	// num is the parsed value of a tokenNum.
	num float64
	// pos is the 1-based rune column at which the token starts.
	pos int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a numeric literal.
	tokenNum
	// tokenIdent is a variable name.
	tokenIdent
	// tokenFunc is a builtin function or constant name. Arity is resolved at
	// call time, not here.
	tokenFunc
	// Each operator and punctuation character has its own kind.
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenPercent
	tokenCaret
	tokenOpen
	tokenClose
	tokenAssign
	tokenSemi
	tokenComma
)

var kindNames = [...]string{
	tokenNone:    "None",
	tokenEOF:     "EOF",
	tokenNum:     "Num",
	tokenIdent:   "Ident",
	tokenFunc:    "Func",
	tokenPlus:    "Plus",
	tokenMinus:   "Minus",
	tokenStar:    "Star",
	tokenSlash:   "Slash",
	tokenPercent: "Percent",
	tokenCaret:   "Caret",
	tokenOpen:    "Open",
	tokenClose:   "Close",
	tokenAssign:  "Assign",
	tokenSemi:    "Semi",
	tokenComma:   "Comma",
}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// puncts maps single-character operators and punctuation to their kinds.
var puncts = map[rune]tokenKind{
	'+': tokenPlus,
	'-': tokenMinus,
	'*': tokenStar,
	'/': tokenSlash,
	'%': tokenPercent,
	'^': tokenCaret,
	'(': tokenOpen,
	')': tokenClose,
	'=': tokenAssign,
	';': tokenSemi,
	',': tokenComma,
}

// eof is the sentinel rune once the cursor passes the end of the input.
const eof rune = -1

type lexer struct {
	src []rune
	pos int
	ch  rune
	p   token
}

func lex(src string) *lexer {
	l := &lexer{src: []rune(src), ch: eof}
	if len(l.src) > 0 {
		l.ch = l.src[0]
	}
	return l
}

// advance moves the cursor one rune forward.
func (l *lexer) advance() {
	l.pos++
	if l.pos < len(l.src) {
		l.ch = l.src[l.pos]
	} else {
		l.ch = eof
	}
}

// push unreads a token so that it is the next token returned from next.
// Panics if there is already a pushed token.
func (l *lexer) push(tok token) {
	if l.p.kind != tokenNone {
		panic("calc: double push")
	}
	l.p = tok
}

// next scans the next token from the input. At the end of the input, the
// result is a tokenEOF, repeatedly on further calls.
func (l *lexer) next() (token, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = token{}
		return tok, nil
	}
	for l.ch != eof && unicode.IsSpace(l.ch) {
		l.advance()
	}
	tok := token{pos: l.pos + 1}
	switch {
	case l.ch == eof:
		tok.kind = tokenEOF
		return tok, nil
	case '0' <= l.ch && l.ch <= '9', l.ch == '.':
		return l.scanNum(tok)
	case l.ch == '_', unicode.IsLetter(l.ch):
		tok.text = l.scanIdent()
		if _, ok := builtins[tok.text]; ok {
			tok.kind = tokenFunc
		} else {
			tok.kind = tokenIdent
		}
		return tok, nil
	default:
		r := l.ch
		l.advance()
		if k, ok := puncts[r]; ok {
			tok.text = string(r)
			tok.kind = k
			return tok, nil
		}
		return tok, &LexError{Text: string(r), Col: tok.pos}
	}
}

// scanNum scans a numeric literal of digits and at most one decimal point.
// A second decimal point or a bare point is a LexError, never a silent zero.
func (l *lexer) scanNum(tok token) (token, error) {
	var b strings.Builder
	dig, dot := false, false
	for {
		switch {
		case '0' <= l.ch && l.ch <= '9':
			dig = true
		case l.ch == '.':
			if dot {
				b.WriteRune(l.ch)
				l.advance()
				return tok, &LexError{Text: b.String(), Kind: "number", Col: tok.pos}
			}
			dot = true
		default:
			if !dig {
				return tok, &LexError{Text: b.String(), Kind: "number", Col: tok.pos}
			}
			text := b.String()
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return tok, &LexError{Text: text, Kind: "number", Col: tok.pos}
			}
			tok.text = text
			tok.kind = tokenNum
			tok.num = v
			return tok, nil
		}
		b.WriteRune(l.ch)
		l.advance()
	}
}

// scanIdent scans a name of letters, digits, and underscores.
func (l *lexer) scanIdent() string {
	var b strings.Builder
	for l.ch == '_' || unicode.IsLetter(l.ch) || unicode.IsDigit(l.ch) {
		b.WriteRune(l.ch)
		l.advance()
	}
	return b.String()
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the text the lexer was scanning when the invalid rune was
	// encountered, including the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number"
	// or the empty string if a token kind hadn't been decided.
	Kind string
	// Col is the 1-based rune column at which the offending token starts.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}
