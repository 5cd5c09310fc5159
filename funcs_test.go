package calc

import (
	"math"
	"testing"
)

func TestBuiltinVocabulary(t *testing.T) {
	monadics := []string{"sin", "cos", "tan", "asin", "acos", "atan", "sqrt", "abs", "floor", "ceil", "round"}
	niladics := []string{"pi", "e"}
	if len(builtins) != len(monadics)+len(niladics) {
		t.Errorf("builtin table has %d entries, want %d", len(builtins), len(monadics)+len(niladics))
	}
	for _, name := range monadics {
		b, ok := builtins[name]
		if !ok {
			t.Errorf("no builtin %q", name)
			continue
		}
		if b.arity != 1 {
			t.Errorf("%s has arity %d, want 1", name, b.arity)
		}
	}
	for _, name := range niladics {
		b, ok := builtins[name]
		if !ok {
			t.Errorf("no builtin %q", name)
			continue
		}
		if b.arity != 0 {
			t.Errorf("%s has arity %d, want 0", name, b.arity)
		}
	}
}

func TestBuiltinDispatch(t *testing.T) {
	cases := []struct {
		name string
		arg  float64
		r    float64
	}{
		{"sin", math.Pi / 2, 1},
		{"cos", math.Pi, -1},
		{"sqrt", 16, 4},
		{"abs", -2.5, 2.5},
		{"floor", -0.5, -1},
		{"ceil", -0.5, 0},
		{"round", 0.5, 1},
		{"pi", 0, math.Pi},
		{"e", 0, math.E},
	}
	for _, c := range cases {
		got := builtins[c.name].call(c.arg)
		if math.Abs(got-c.r) > 1e-12 {
			t.Errorf("%s(%g): want %g, got %g", c.name, c.arg, c.r, got)
		}
	}
}
