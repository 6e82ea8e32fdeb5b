package calc_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/zephyrtronium/calc"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		src  string
		want calc.Category
	}{
		{"1+1", calc.CategoryNone},
		{"2..5", calc.CategorySyntax},
		{"5_4", calc.CategorySyntax},
		{"eπ", calc.CategorySyntax},
		{"2+", calc.CategorySyntax},
		{"2 (3)", calc.CategorySyntax},
		{"10÷0", calc.CategoryArithmetic},
		{"ln(0)", calc.CategoryArithmetic},
		{"log(0)", calc.CategoryArithmetic},
		{"(2+3", calc.CategoryParentheses},
		{"2+3)", calc.CategoryParentheses},
	}
	for _, c := range cases {
		_, err := calc.EvalString(c.src)
		if got := calc.Classify(err); got != c.want {
			t.Errorf("%q: want category %d, got %d (error %v)", c.src, c.want, got, err)
		}
	}
	if got := calc.Classify(errors.New("other")); got != calc.CategorySyntax {
		t.Errorf("foreign error: want syntax, got %d", got)
	}
	wrapped := fmt.Errorf("evaluating: %w", &calc.DomainError{Func: "÷"})
	if got := calc.Classify(wrapped); got != calc.CategoryArithmetic {
		t.Errorf("wrapped division error: want arithmetic, got %d", got)
	}
}

func TestCategoryMessage(t *testing.T) {
	cases := []struct {
		c    calc.Category
		want string
	}{
		{calc.CategoryNone, ""},
		{calc.CategorySyntax, "SYNTAX ERROR"},
		{calc.CategoryArithmetic, "ARITHMETIC ERROR"},
		{calc.CategoryParentheses, "PARENTHESIS ERROR"},
	}
	for _, c := range cases {
		if got := c.c.Message(); got != c.want {
			t.Errorf("category %d: want %q, got %q", c.c, c.want, got)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"2..5", `3: invalid number "2.."`},
		{"5_4", `2: invalid character "_"`},
		{"(3).6", "4: syntax error: decimal point directly after )"},
		{"2–3", "2: syntax error: misplaced negation sign"},
		{"(2+3", "1: open parenthesis with no close parenthesis"},
		{"2+3)", "4: close parenthesis with no open parenthesis"},
		{"10÷0", "0 outside domain of ÷"},
		{"ln(0-2)", "-2 outside domain of ln"},
		{"√-4", "no operand for √"},
		{"2+", "+ needs 2 operands, have 1"},
		{"", "no expression"},
		{"2 3", "2 values with no operator between them"},
	}
	for _, c := range cases {
		_, err := calc.EvalString(c.src)
		if err == nil {
			t.Errorf("%q: expected error", c.src)
			continue
		}
		if got := err.Error(); got != c.want {
			t.Errorf("%q: want message %q, got %q", c.src, c.want, got)
		}
	}
}

func TestInputErrorPos(t *testing.T) {
	_, err := calc.EvalString("1+2+3.4.5")
	var ierr calc.InputError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected InputError, got %v", err)
	}
	if ierr.Pos() != 8 {
		t.Errorf("want position 8, got %d", ierr.Pos())
	}
}
