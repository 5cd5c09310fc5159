package calc

import "strconv"

// ParseError is an error indicating that the token stream violates the
// grammar. It implements InputError.
type ParseError struct {
	// Col is the position of the offending token.
	Col int
	// Want is the token kind a grammar rule required, or tokenNone if any
	// start of an expression would have done.
	Want tokenKind
	// Got is the text of the offending token. It is empty at end of input.
	Got string
}

func (err *ParseError) Error() string {
	got := "end of input"
	if err.Got != "" {
		got = strconv.Quote(err.Got)
	}
	if err.Want == tokenNone {
		return errpos(err.Col, "unexpected "+got)
	}
	return errpos(err.Col, "expected "+err.Want.String()+", got "+got)
}

func (err *ParseError) Pos() int {
	return err.Col
}

// UndefinedVariableError is an error from a lookup for a variable that is
// missing from the symbol table. It implements InputError.
type UndefinedVariableError struct {
	// Col is the position of the identifier.
	Col int
	// Name is the name that was missing.
	Name string
}

func (err *UndefinedVariableError) Error() string {
	return errpos(err.Col, "undefined variable "+strconv.Quote(err.Name))
}

func (err *UndefinedVariableError) Pos() int {
	return err.Col
}

// UnknownFunctionError is an error from a call to a function name that is not
// in the builtin table. The lexer only emits function tokens for names in the
// table, so this is unreachable by construction; it exists so that a mismatch
// between lexer and dispatch surfaces as an error rather than a panic. It
// implements InputError.
type UnknownFunctionError struct {
	// Col is the position of the function name.
	Col int
	// Name is the name that was called.
	Name string
}

func (err *UnknownFunctionError) Error() string {
	return errpos(err.Col, "unknown function "+strconv.Quote(err.Name))
}

func (err *UnknownFunctionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based rune column of the
	// token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*ParseError)(nil)
	_ InputError = (*UndefinedVariableError)(nil)
	_ InputError = (*UnknownFunctionError)(nil)
)
