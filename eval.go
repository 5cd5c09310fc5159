package calc

// Evaluate runs src against a snapshot of variables and returns the value of
// the last statement together with the final variable set. The given map is
// never mutated; the returned map is a fresh copy including any assignments
// src made. On any error the returned map is nil and no assignment takes
// effect, even if statements before the failing one had already executed.
func Evaluate(src string, vars map[string]float64) (float64, map[string]float64, error) {
	own := make(map[string]float64, len(vars)+1)
	for k, v := range vars {
		own[k] = v
	}
	p, err := newParser(lex(src), own)
	if err != nil {
		return 0, nil, err
	}
	r, err := p.program()
	if err != nil {
		return 0, nil, err
	}
	return r, own, nil
}

// EvalString is a shortcut to evaluate src with no variables defined.
func EvalString(src string) (float64, error) {
	r, _, err := Evaluate(src, nil)
	return r, err
}
