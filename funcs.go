package calc

import "math"

// builtin is one entry of the dispatch table: either a function of one
// argument or a niladic constant. Domain violations are not checked; results
// follow IEEE-754, so e.g. sqrt(-1) is NaN rather than an error.
type builtin struct {
	arity int
	fn    func(float64) float64
}

func (b builtin) call(arg float64) float64 {
	return b.fn(arg)
}

// monadic wraps a function of one variable into a builtin.
func monadic(f func(float64) float64) builtin {
	return builtin{arity: 1, fn: f}
}

// niladic wraps a constant into a builtin called with empty parentheses.
func niladic(v float64) builtin {
	return builtin{fn: func(float64) float64 { return v }}
}

// builtins is the closed vocabulary of function and constant names. The
// lexer emits a function token exactly for these names; there is no way to
// register more. Trig functions work in radians both ways.
var builtins = map[string]builtin{
	"sin":   monadic(math.Sin),
	"cos":   monadic(math.Cos),
	"tan":   monadic(math.Tan),
	"asin":  monadic(math.Asin),
	"acos":  monadic(math.Acos),
	"atan":  monadic(math.Atan),
	"sqrt":  monadic(math.Sqrt),
	"abs":   monadic(math.Abs),
	"floor": monadic(math.Floor),
	"ceil":  monadic(math.Ceil),
	"round": monadic(math.Round),

	// constants
	"pi": niladic(math.Pi),
	"e":  niladic(math.E),
}
