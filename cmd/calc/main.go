package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"

	"github.com/washimimizuku/calc"
)

func main() {
	log := logrus.New()
	var (
		verb    string
		verbose bool
		given   = map[string]float64{}
	)
	addgiven := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		v, err := calc.EvalString(d[1])
		if err != nil {
			return err
		}
		given[strings.TrimSpace(d[0])] = v
		return nil
	}
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("given", "name=value variable definition (any number of times)", addgiven)
	flag.BoolVar(&verbose, "v", false, "log evaluations")
	flag.Parse()
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	s := calc.NewSession(calc.WithVars(given), calc.WithLogger(logrus.NewEntry(log)))
	verb += "\n"

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			r, err := s.Eval(arg)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf(verb, r)
		}
		return
	}
	repl(s, verb, log)
}

func repl(s *calc.Session, verb string, log *logrus.Logger) {
	rl, err := readline.New("calc> ")
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()
	fmt.Println("calc: type expressions like 2 + 3, sin(pi()/2), or x = 5; y = x + 2")
	fmt.Println("commands: help, vars, clear, quit")
	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			continue
		case errors.Is(err, io.EOF):
			return
		case err != nil:
			log.Fatal(err)
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "quit", "exit", "q":
			return
		case "help", "h":
			help()
			continue
		case "vars", "variables":
			vars(s)
			continue
		case "clear":
			s.Clear()
			fmt.Println("variables cleared")
			continue
		}
		r, err := s.Eval(line)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Printf(verb, r)
	}
}

func vars(s *calc.Session) {
	m := s.Vars()
	if len(m) == 0 {
		fmt.Println("no variables defined")
		return
	}
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Printf("  %s = %g\n", k, m[k])
	}
}

func help() {
	fmt.Print(`arithmetic:
  2 + 3 * 4        usual precedence
  2 ^ 3 ^ 2        exponentiation, right associative
  10 % 3           modulo
  -5               unary minus
variables:
  x = 5            assignment
  x = 5; y = x * 2 multiple statements; the last one is the result
functions:
  sin cos tan asin acos atan   trigonometry, in radians
  sqrt abs floor ceil round    math
  pi() e()                     constants
commands:
  help   show this help
  vars   show current variables
  clear  drop all variables
  quit   exit
`)
}
