// Package calc evaluates infix arithmetic typed on a calculator keypad.
//
// Expressions use the operators + - × ÷ ^, parentheses, the constants e and
// π, and the functions √, ln, and log. Adjacent factors multiply: "2π",
// "(3)(2)", and "5e" are all products. The hyphen "-" subtracts while the en
// dash "–" negates the factor after it. Negation binds tighter than × and ÷
// but looser than ^ and functions, so "–2^2" is -4 and "–(–(5+4)×3)" is 27.
// Operators of equal precedence associate to the left, exponentiation
// included, so "2^3^2" is 64.
//
// EvalString is the usual entry point. Tokenize, CheckBalance, and Evaluate
// expose its stages, and Build creates an expression tree from the same
// tokens.
package calc
