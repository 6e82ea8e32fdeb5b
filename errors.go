package calc

import (
	"errors"
	"strconv"
)

// Sentinel errors. Every error returned by this package unwraps to exactly
// one of these.
var (
	ErrMismatchedParentheses = errors.New("mismatched parentheses")
	ErrSyntax                = errors.New("syntax error")
	ErrInvalidCharacter      = errors.New("invalid character")
	ErrInvalidNumber         = errors.New("invalid number format")
	ErrInsufficientOperands  = errors.New("insufficient operands")
	ErrExtraOperands         = errors.New("operands with no operator between them")
	ErrDivisionByZero        = errors.New("division by zero")
	ErrNonPositiveLog        = errors.New("logarithm of non-positive number")
)

// LexError indicates input the tokenizer could not accept. It implements
// InputError.
type LexError struct {
	// Text is the input the tokenizer was scanning when it failed, including
	// the offending rune.
	Text string
	// Kind is KindNumber, KindChar, or KindSyntax.
	Kind string
	// Msg describes a syntax error.
	Msg string
	// Col is the 1-based rune column of the offending rune.
	Col int
}

// Kinds of LexError.
const (
	KindNumber = "number"
	KindChar   = "character"
	KindSyntax = "syntax"
)

func (err *LexError) Error() string {
	switch err.Kind {
	case KindNumber:
		return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
	case KindChar:
		return errpos(err.Col, "invalid character "+strconv.Quote(err.Text))
	default:
		return errpos(err.Col, "syntax error: "+err.Msg)
	}
}

func (err *LexError) Unwrap() error {
	switch err.Kind {
	case KindNumber:
		return ErrInvalidNumber
	case KindChar:
		return ErrInvalidCharacter
	default:
		return ErrSyntax
	}
}

func (err *LexError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis. It is 0 when the
	// mismatch was found in a token sequence rather than in source text.
	Col int
	// Left is "(" if an open parenthesis was never closed.
	Left string
	// Right is ")" if a close parenthesis had no open parenthesis.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close parenthesis with no open parenthesis")
	}
	return errpos(err.Col, "open parenthesis with no close parenthesis")
}

func (err *BracketError) Unwrap() error {
	return ErrMismatchedParentheses
}

func (err *BracketError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator or function token that
// the evaluator does not understand. Only hand-built token sequences can
// produce it.
type OperatorError struct {
	Tok Token
}

func (err *OperatorError) Error() string {
	return "unknown " + err.Tok.Kind.String() + " " + strconv.Quote(err.Tok.Text)
}

func (err *OperatorError) Unwrap() error {
	return ErrSyntax
}

// OperandError is an error indicating that the operand stack did not hold
// the number of values needed by an operator, by a function, or at the end
// of the expression.
type OperandError struct {
	// Op is the operator or function being applied, or the empty string at
	// the end of the expression.
	Op string
	// Have is the number of operands available.
	Have int
	// Want is the number of operands needed.
	Want int
}

func (err *OperandError) Error() string {
	switch {
	case err.Op == "" && err.Have == 0:
		return "no expression"
	case err.Op == "":
		return strconv.Itoa(err.Have) + " values with no operator between them"
	case err.Have == 0:
		return "no operand for " + err.Op
	default:
		return err.Op + " needs " + strconv.Itoa(err.Want) + " operands, have " + strconv.Itoa(err.Have)
	}
}

func (err *OperandError) Unwrap() error {
	if err.Have > err.Want {
		return ErrExtraOperands
	}
	return ErrInsufficientOperands
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information in the source text.
type InputError interface {
	error
	// Pos returns the 1-based rune column of the error, or 0 if the error
	// was detected after tokenizing.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*BracketError)(nil)
)

// Category is the coarse class of an evaluation failure that a caller shows
// to a user.
type Category int

const (
	// CategoryNone is the category of a nil error.
	CategoryNone Category = iota
	// CategorySyntax covers malformed input: lexical errors and operators
	// without enough operands.
	CategorySyntax
	// CategoryArithmetic covers division by zero and logarithm domain errors.
	CategoryArithmetic
	// CategoryParentheses covers unbalanced parentheses.
	CategoryParentheses
)

// Classify returns the category of an error returned by this package. Errors
// from elsewhere are CategorySyntax.
func Classify(err error) Category {
	switch {
	case err == nil:
		return CategoryNone
	case errors.Is(err, ErrMismatchedParentheses):
		return CategoryParentheses
	case errors.Is(err, ErrDivisionByZero), errors.Is(err, ErrNonPositiveLog):
		return CategoryArithmetic
	default:
		return CategorySyntax
	}
}

// Message returns the text a calculator display shows for the category.
func (c Category) Message() string {
	switch c {
	case CategoryNone:
		return ""
	case CategoryArithmetic:
		return "ARITHMETIC ERROR"
	case CategoryParentheses:
		return "PARENTHESIS ERROR"
	default:
		return "SYNTAX ERROR"
	}
}
