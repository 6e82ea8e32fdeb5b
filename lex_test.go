package calc

import (
	"errors"
	"reflect"
	"testing"
)

func num(s string) Token { return Token{Text: s, Kind: Number} }
func op(s string) Token  { return Token{Text: s, Kind: Operator} }
func fn(s string) Token  { return Token{Text: s, Kind: Function} }

var (
	lp    = Token{Text: "(", Kind: Parenthesis}
	rp    = Token{Text: ")", Kind: Parenthesis}
	times = op("×")
	neg   = []Token{lp, num("0"), op("-"), num("1"), rp, op("*")}
)

func cat(parts ...interface{}) []Token {
	var r []Token
	for _, p := range parts {
		switch p := p.(type) {
		case Token:
			r = append(r, p)
		case []Token:
			r = append(r, p...)
		default:
			panic("cat: bad part")
		}
	}
	return r
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []Token
	}{
		{"empty", "", []Token{}},
		{"spaces", " \t ", []Token{}},
		{"decimals", "2.5+3.0", []Token{num("2.5"), op("+"), num("3.0")}},
		{"leading-dot", ".5", []Token{num(".5")}},
		{"trailing-dot", "5.", []Token{num("5.")}},
		{"operators", "5×4-3÷2+2^2", []Token{
			num("5"), op("×"), num("4"), op("-"), num("3"), op("÷"),
			num("2"), op("+"), num("2"), op("^"), num("2"),
		}},
		{"parens", "(3+4)", []Token{lp, num("3"), op("+"), num("4"), rp}},
		{"whitespace", " 1 + 2 ", []Token{num("1"), op("+"), num("2")}},
		{"negate", "–3", cat(neg, num("3"))},
		{"negate-after-op", "3×–3", cat(num("3"), times, neg, num("3"))},
		{"negate-after-paren", "(–e)", cat(lp, neg, num(E), rp)},
		{"negate-func", "–ln(2)", cat(neg, fn("ln"), lp, num("2"), rp)},
		{"num-paren", "3(2)", []Token{num("3"), times, lp, num("2"), rp}},
		{"paren-paren", "(3)(2)", []Token{lp, num("3"), rp, times, lp, num("2"), rp}},
		{"paren-num", "(3)2", []Token{lp, num("3"), rp, times, num("2")}},
		{"paren-const", "(3)π", []Token{lp, num("3"), rp, times, num(Pi)}},
		{"paren-sqrt", "(3)√4", []Token{lp, num("3"), rp, times, fn("√"), num("4")}},
		{"paren-ln", "(3)ln(2)", []Token{lp, num("3"), rp, fn("ln"), lp, num("2"), rp}},
		{"dot-paren", ".6(3)", []Token{num(".6"), times, lp, num("3"), rp}},
		{"num-e", "5e", []Token{num("5"), times, num(E)}},
		{"e-num", "e5", []Token{num(E), times, num("5")}},
		{"num-pi", "2π", []Token{num("2"), times, num(Pi)}},
		{"pi-num", "π2", []Token{num(Pi), times, num("2")}},
		{"pi-paren", "π(2)", []Token{num(Pi), times, lp, num("2"), rp}},
		{"e-pow-pi", "e^π", []Token{num(E), op("^"), num(Pi)}},
		{"num-e-num", "2e3", []Token{num("2"), times, num(E), times, num("3")}},
		{"num-sqrt", "2√4", []Token{num("2"), times, fn("√"), num("4")}},
		{"num-ln", "2ln(3)", []Token{num("2"), times, fn("ln"), lp, num("3"), rp}},
		{"num-log", "2log(3)", []Token{num("2"), times, fn("log"), lp, num("3"), rp}},
		{"sqrt-sub", "√-4", []Token{fn("√"), op("-"), num("4")}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Tokenize(c.src)
			if err != nil {
				t.Fatalf("%q: unexpected error: %v", c.src, err)
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("%q: wrong tokens\nwant %v\ngot  %v", c.src, c.want, got)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind string
		col  int
	}{
		{"double-dot", "2..3", KindNumber, 3},
		{"triple-part", "2.3.4", KindNumber, 4},
		{"lone-dot", ".", KindNumber, 1},
		{"lone-dot-op", "1+.+2", KindNumber, 3},
		{"underscore", "5_4", KindChar, 2},
		{"letter", "2a", KindChar, 2},
		{"l-only", "lx", KindChar, 1},
		{"lo-only", "lo(2)", KindChar, 1},
		{"ascii-star", "2*3", KindChar, 2},
		{"paren-dot", "(3).6", KindSyntax, 4},
		{"e-e", "ee", KindSyntax, 2},
		{"e-pi", "eπ", KindSyntax, 2},
		{"pi-e", "πe", KindSyntax, 2},
		{"negate-after-paren", "–(–3)–(3)", KindSyntax, 6},
		{"negate-after-num", "2–3", KindSyntax, 2},
		{"negate-alone", "–", KindSyntax, 1},
		{"negate-dot", "–.5", KindSyntax, 1},
		{"negate-negate", "––5", KindSyntax, 1},
		{"negate-space", "2+ –3", KindSyntax, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			if err == nil {
				t.Fatalf("%q: expected error, got tokens %v", c.src, toks)
			}
			var lerr *LexError
			if !errors.As(err, &lerr) {
				t.Fatalf("%q: expected *LexError, got %T: %v", c.src, err, err)
			}
			if lerr.Kind != c.kind {
				t.Errorf("%q: wrong kind: want %q, got %q (%v)", c.src, c.kind, lerr.Kind, err)
			}
			if lerr.Pos() != c.col {
				t.Errorf("%q: wrong column: want %d, got %d (%v)", c.src, c.col, lerr.Pos(), err)
			}
		})
	}
}

func TestTokenString(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{num("1.5"), "Number:1.5"},
		{op("×"), "Operator:×"},
		{lp, "Parenthesis:("},
		{fn("log"), "Function:log"},
		{Token{Text: "?", Kind: 7}, "TokenKind(7):?"},
	}
	for _, c := range cases {
		if got := c.tok.String(); got != c.want {
			t.Errorf("want %q, got %q", c.want, got)
		}
	}
}

func TestPrecedence(t *testing.T) {
	cases := []struct {
		tok  Token
		want int
	}{
		{lp, 0},
		{rp, 0},
		{op("+"), 1},
		{op("-"), 1},
		{op("×"), 2},
		{op("÷"), 2},
		{op("*"), 3},
		{op("^"), 4},
		{fn("√"), 4},
		{fn("ln"), 4},
		{fn("log"), 4},
		{num("1"), -1},
		{op("%"), -1},
		{fn("sin"), -1},
	}
	for _, c := range cases {
		if got := Precedence(c.tok); got != c.want {
			t.Errorf("%v: want %d, got %d", c.tok, c.want, got)
		}
	}
}
