package calc_test

import (
	"fmt"

	"github.com/washimimizuku/calc"
)

func ExampleEvaluate() {
	r, vars, err := calc.Evaluate("x = 5; y = x + 2; x * y", nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(r, vars["x"], vars["y"])

	// Output:
	// 35 5 7
}

func ExampleSession() {
	s := calc.NewSession()
	for _, line := range []string{"radius = 2", "pi() * radius ^ 2", "2 +"} {
		r, err := s.Eval(line)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Printf("%.4f\n", r)
	}

	// Output:
	// 2.0000
	// 12.5664
	// error: 4: unexpected end of input
}
