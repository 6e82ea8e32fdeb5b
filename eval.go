package calc

import "strconv"

// EvalString evaluates an expression. The error, if any, is the first one
// found by Tokenize, CheckBalance, or Evaluate, in that order; use errors.Is
// with the package's sentinel errors or Classify to inspect it.
//
// EvalString is safe to call concurrently.
func EvalString(expression string) (float64, error) {
	toks, err := Tokenize(expression)
	if err != nil {
		return 0, err
	}
	if err := CheckBalance(expression); err != nil {
		return 0, err
	}
	return Evaluate(toks)
}

// Evaluate computes the value of a token sequence in one left-to-right pass.
// Operators of equal precedence, including ^, associate to the left.
func Evaluate(tokens []Token) (float64, error) {
	m := machine[float64]{
		leaf:  number,
		apply: applyNum,
	}
	return m.run(tokens)
}

func number(tok Token) (float64, error) {
	v, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		return 0, &LexError{Text: tok.Text, Kind: KindNumber}
	}
	return v, nil
}

func applyNum(op Token, args []float64) (float64, error) {
	if op.Kind == Function {
		return funcs[op.Text](args[0])
	}
	return binops[op.Text](args[0], args[1])
}

// machine is the two-stack precedence evaluator. Operands are values of type
// T; leaf creates one from a Number token and apply combines them under an
// operator or function.
type machine[T any] struct {
	ops   []Token
	vals  []T
	leaf  func(tok Token) (T, error)
	apply func(op Token, args []T) (T, error)
}

func (m *machine[T]) run(tokens []Token) (T, error) {
	var zero T
	m.ops = make([]Token, 0, len(tokens)/2+1)
	m.vals = make([]T, 0, len(tokens)/2+1)
	for _, tok := range tokens {
		if err := m.step(tok); err != nil {
			return zero, err
		}
	}
	for len(m.ops) > 0 {
		if m.top() == tokOpen {
			return zero, &BracketError{Left: "("}
		}
		if err := m.reduce(); err != nil {
			return zero, err
		}
	}
	if len(m.vals) != 1 {
		return zero, &OperandError{Have: len(m.vals), Want: 1}
	}
	return m.vals[0], nil
}

func (m *machine[T]) step(tok Token) error {
	switch tok.Kind {
	case Number:
		v, err := m.leaf(tok)
		if err != nil {
			return err
		}
		m.vals = append(m.vals, v)
	case Operator:
		p := Precedence(tok)
		if p < 0 {
			return &OperatorError{Tok: tok}
		}
		for len(m.ops) > 0 && Precedence(m.top()) >= p {
			if err := m.reduce(); err != nil {
				return err
			}
		}
		m.ops = append(m.ops, tok)
	case Parenthesis:
		switch tok {
		case tokOpen:
			m.ops = append(m.ops, tok)
		case tokClose:
			return m.closeParen()
		default:
			return &OperatorError{Tok: tok}
		}
	case Function:
		// Functions wait for their operand; only later operators apply them.
		if Precedence(tok) < 0 {
			return &OperatorError{Tok: tok}
		}
		m.ops = append(m.ops, tok)
	default:
		return &OperatorError{Tok: tok}
	}
	return nil
}

// closeParen applies operators down to the nearest open parenthesis and discards
// it.
func (m *machine[T]) closeParen() error {
	for len(m.ops) > 0 {
		if m.top() == tokOpen {
			m.ops = m.ops[:len(m.ops)-1]
			return nil
		}
		if err := m.reduce(); err != nil {
			return err
		}
	}
	return &BracketError{Right: ")"}
}

// reduce pops the top operator and applies it to the operands it needs.
func (m *machine[T]) reduce() error {
	op := m.ops[len(m.ops)-1]
	m.ops = m.ops[:len(m.ops)-1]
	n := 2
	if op.Kind == Function {
		n = 1
	}
	k := len(m.vals) - n
	if k < 0 {
		return &OperandError{Op: op.Text, Have: len(m.vals), Want: n}
	}
	v, err := m.apply(op, m.vals[k:])
	if err != nil {
		return err
	}
	m.vals = append(m.vals[:k], v)
	return nil
}

func (m *machine[T]) top() Token {
	return m.ops[len(m.ops)-1]
}
