package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/zephyrtronium/calc"
)

var categoryColors = map[calc.Category]*color.Color{
	calc.CategorySyntax:      color.New(color.FgRed, color.Bold),
	calc.CategoryArithmetic:  color.New(color.FgYellow, color.Bold),
	calc.CategoryParentheses: color.New(color.FgMagenta, color.Bold),
}

// printer evaluates expressions and writes their results or errors.
type printer struct {
	out  io.Writer
	verb string
	echo bool
	// prompt is written before each line read in interactive mode.
	prompt string

	total, failed int
}

func (p *printer) eval(src string) {
	p.total++
	if p.echo {
		if e, err := calc.ParseString(src); err == nil {
			fmt.Fprintf(p.out, "%v : ", e)
		}
	}
	r, err := calc.EvalString(src)
	if err != nil {
		p.failed++
		c := calc.Classify(err)
		fmt.Fprintf(p.out, "%s: %v\n", categoryColors[c].Sprint(c.Message()), err)
		return
	}
	fmt.Fprintf(p.out, p.verb, r)
}

// evalAll evaluates the contents of r as one expression, or as one
// expression per non-blank line.
func (p *printer) evalAll(r io.Reader, lines bool) error {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		if src := strings.TrimSpace(string(b)); src != "" {
			p.eval(src)
		}
		return nil
	}
	sc := bufio.NewScanner(r)
	fmt.Fprint(p.out, p.prompt)
	for sc.Scan() {
		if src := strings.TrimSpace(sc.Text()); src != "" {
			p.eval(src)
		}
		fmt.Fprint(p.out, p.prompt)
	}
	return sc.Err()
}
