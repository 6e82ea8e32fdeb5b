// Command calc evaluates calculator expressions from arguments, a file, or
// standard input.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "calc [expression...]",
	Short: "Evaluate calculator expressions",
	Long: `Evaluate calculator expressions such as "2π", "–(3+4)×2", or "√(log(100)+7)".
Each argument is one expression. With no arguments, standard input is read.`,
	Args:         cobra.ArbitraryArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().String("in", "", "input file, - for stdin (default stdin if no args given)")
	rootCmd.Flags().String("fmt", "", "result formatting string (default %g, env CALC_FMT)")
	rootCmd.Flags().BoolP("lines", "n", false, "evaluate separate input lines as separate expressions")
	rootCmd.Flags().Bool("echo", false, "print expression trees")
	rootCmd.Flags().String("color", "", "color errors: auto, always, or never (default auto, env CALC_COLOR)")
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	verb := envOrDefault("CALC_FMT", "%g")
	if v, _ := cmd.Flags().GetString("fmt"); v != "" {
		verb = v
	}

	mode := envOrDefault("CALC_COLOR", "auto")
	if v, _ := cmd.Flags().GetString("color"); v != "" {
		mode = v
	}
	switch mode {
	case "auto":
		// fatih/color already disables itself when stdout is not a terminal.
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		return fmt.Errorf("unknown color mode %q", mode)
	}

	inname, _ := cmd.Flags().GetString("in")
	lines, _ := cmd.Flags().GetBool("lines")
	echo, _ := cmd.Flags().GetBool("echo")

	p := printer{out: cmd.OutOrStdout(), verb: verb + "\n", echo: echo}
	for _, arg := range args {
		p.eval(arg)
	}

	f, err := infile(inname, len(args) == 0)
	if err != nil {
		return err
	}
	if f != nil {
		if f == os.Stdin && term.IsTerminal(int(os.Stdin.Fd())) {
			p.prompt = "> "
			lines = true
		} else {
			defer f.Close()
		}
		if err := p.evalAll(f, lines); err != nil {
			log.Fatal(err)
		}
	}

	if p.failed > 0 && p.prompt == "" {
		return fmt.Errorf("%d of %d expressions failed", p.failed, p.total)
	}
	return nil
}

func infile(inname string, std bool) (*os.File, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
