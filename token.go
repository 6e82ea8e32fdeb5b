package calc

// Token is a single lexical unit of an expression.
type Token struct {
	Text string
	Kind TokenKind
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text
}

// TokenKind is the lexical class of a token.
type TokenKind int

const (
	// Number is a decimal literal or a substituted constant.
	Number TokenKind = iota
	// Operator is one of + - × ÷ ^, or the * produced by unary negation.
	Operator
	// Parenthesis is ( or ).
	Parenthesis
	// Function is one of √, ln, log.
	Function
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind

// Operators contains the runes which are lexed as binary operators. The
// ASCII hyphen is subtraction; negation is written with NegationSign.
const Operators = "+-×÷^"

// NegationSign is the rune which negates the factor following it. It is an en
// dash, distinct from the hyphen used for subtraction.
const NegationSign = '–'

// Operator and function texts.
const (
	opAdd    = "+"
	opSub    = "-"
	opMul    = "×"
	opDiv    = "÷"
	opPow    = "^"
	opNegMul = "*"

	fnSqrt = "√"
	fnLn   = "ln"
	fnLog  = "log"
)

var (
	tokOpen  = Token{Text: "(", Kind: Parenthesis}
	tokClose = Token{Text: ")", Kind: Parenthesis}
	tokTimes = Token{Text: opMul, Kind: Operator}
)

// Precedence returns the binding strength of an operator, function, or
// parenthesis token. Parentheses have the lowest precedence, 0. The result is
// -1 for numbers and for operator or function texts that are not understood.
func Precedence(tok Token) int {
	switch tok.Kind {
	case Parenthesis:
		return 0
	case Operator:
		switch tok.Text {
		case opAdd, opSub:
			return 1
		case opMul, opDiv:
			return 2
		case opNegMul:
			return 3
		case opPow:
			return 4
		}
	case Function:
		switch tok.Text {
		case fnSqrt, fnLn, fnLog:
			return 4
		}
	}
	return -1
}
