// Package calc implements the expression engine behind an interactive
// calculator.
//
// Input is one or more statements separated by semicolons. A statement is
// either an expression or an assignment like "x = 5". Expressions support
// the usual arithmetic operators with the usual precedence, right-associative
// exponentiation with "^", a closed set of math functions such as sin and
// sqrt, and the constants pi() and e(). Unary minus binds tighter than
// exponentiation's right operand, so "-2^2" is "(-2)^2"; write "-(2^2)" for
// the other reading. Evaluation happens directly while parsing; there is no
// intermediate syntax tree.
//
// Variables persist across calls through the snapshot threaded in and out of
// Evaluate, or more conveniently through a Session, which commits its
// snapshot only when a whole input evaluates without error.
package calc
