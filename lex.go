package calc

import (
	"strings"
	"unicode"
)

type lexer struct {
	src  []rune
	toks []Token
}

// Tokenize converts an expression into tokens. Implicit multiplications become
// explicit × tokens, each negation sign is expanded into the tokens
// ( 0 - 1 ) *, and the constants e and π become Number tokens holding E and
// Pi. Errors are of type *LexError.
func Tokenize(expression string) ([]Token, error) {
	l := lexer{src: []rune(expression)}
	l.toks = make([]Token, 0, len(l.src)+1)
	for i := 0; i < len(l.src); i++ {
		var err error
		i, err = l.next(i)
		if err != nil {
			return nil, err
		}
	}
	return l.toks, nil
}

// next scans the token starting at src[i] and returns the index of the last
// rune it consumed.
func (l *lexer) next(i int) (int, error) {
	r := l.src[i]
	switch {
	case unicode.IsSpace(r):
		return i, nil
	case isDigit(r), r == '.':
		j, err := l.scanNum(i)
		if err != nil {
			return i, err
		}
		l.emit(Token{Text: string(l.src[i:j]), Kind: Number})
		if l.startsFactorAfterNumber(j) {
			l.emit(tokTimes)
		}
		return j - 1, nil
	case r == ')':
		l.emit(tokClose)
		switch c := l.at(i + 1); {
		case c == '.':
			return i, l.syntax(i+1, "decimal point directly after )")
		case isDigit(c), c == 'e', c == 'π', c == '(', c == '√':
			l.emit(tokTimes)
		}
		return i, nil
	case r == 'e', r == 'π':
		if n := len(l.toks); n > 0 && l.toks[n-1].Kind == Number {
			return i, l.syntax(i, "constant "+string(r)+" directly after a number")
		}
		v := E
		if r == 'π' {
			v = Pi
		}
		l.emit(Token{Text: v, Kind: Number})
		if c := l.at(i + 1); isDigit(c) || c == '(' {
			l.emit(tokTimes)
		}
		return i, nil
	case r == '√':
		l.emit(Token{Text: fnSqrt, Kind: Function})
		return i, nil
	case l.hasPrefix(i, fnLn):
		l.emit(Token{Text: fnLn, Kind: Function})
		return i + 1, nil
	case l.hasPrefix(i, fnLog):
		l.emit(Token{Text: fnLog, Kind: Function})
		return i + 2, nil
	case strings.ContainsRune(Operators, r):
		l.emit(Token{Text: string(r), Kind: Operator})
		return i, nil
	case r == '(':
		l.emit(tokOpen)
		return i, nil
	case r == NegationSign:
		if !l.negationAllowed(i) {
			return i, l.syntax(i, "misplaced negation sign")
		}
		l.emit(tokOpen)
		l.emit(Token{Text: "0", Kind: Number})
		l.emit(Token{Text: opSub, Kind: Operator})
		l.emit(Token{Text: "1", Kind: Number})
		l.emit(tokClose)
		l.emit(Token{Text: opNegMul, Kind: Operator})
		return i, nil
	default:
		return i, &LexError{Text: string(r), Kind: KindChar, Col: i + 1}
	}
}

// scanNum scans a maximal run of digits and decimal points starting at src[i]
// and returns the index just past it.
func (l *lexer) scanNum(i int) (int, error) {
	dot, dig := false, false
	j := i
	for ; j < len(l.src); j++ {
		switch r := l.src[j]; {
		case isDigit(r):
			dig = true
		case r == '.':
			if dot {
				return j, &LexError{Text: string(l.src[i : j+1]), Kind: KindNumber, Col: j + 1}
			}
			dot = true
		default:
			if !dig {
				return j, &LexError{Text: string(l.src[i:j]), Kind: KindNumber, Col: i + 1}
			}
			return j, nil
		}
	}
	if !dig {
		return j, &LexError{Text: string(l.src[i:j]), Kind: KindNumber, Col: i + 1}
	}
	return j, nil
}

// startsFactorAfterNumber reports whether src[i] begins a factor that is
// implicitly multiplied with the number before it.
func (l *lexer) startsFactorAfterNumber(i int) bool {
	switch l.at(i) {
	case '(', 'e', 'π', '√':
		return true
	}
	return l.startsLog(i)
}

// negationAllowed reports whether the negation sign at src[i] follows the
// start of input, an open parenthesis, or an operator, and precedes the start
// of an operand.
func (l *lexer) negationAllowed(i int) bool {
	if i > 0 {
		p := l.src[i-1]
		if p != '(' && !strings.ContainsRune(Operators, p) {
			return false
		}
	}
	switch c := l.at(i + 1); {
	case isDigit(c), c == '(', c == 'e', c == 'π', c == '√':
		return true
	}
	return l.startsLog(i + 1)
}

// startsLog reports whether src[i:] begins with ln or lo.
func (l *lexer) startsLog(i int) bool {
	if l.at(i) != 'l' {
		return false
	}
	c := l.at(i + 1)
	return c == 'n' || c == 'o'
}

func (l *lexer) hasPrefix(i int, s string) bool {
	for _, r := range s {
		if l.at(i) != r {
			return false
		}
		i++
	}
	return true
}

// at returns src[i], or 0 if i is out of range.
func (l *lexer) at(i int) rune {
	if i < 0 || i >= len(l.src) {
		return 0
	}
	return l.src[i]
}

func (l *lexer) emit(tok Token) {
	l.toks = append(l.toks, tok)
}

func (l *lexer) syntax(i int, msg string) error {
	return &LexError{
		Text: string(l.src[i : i+1]),
		Kind: KindSyntax,
		Msg:  msg,
		Col:  i + 1,
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
