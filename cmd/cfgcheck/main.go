package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cfgcheck/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cfgcheck",
	Short: "Cross-check legacy make variables against the new configuration engine",
	Long: `cfgcheck compares the variables produced by the legacy make evaluator with
the ones computed by the new configuration engine and reports every variable
whose value differs under make whitespace semantics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// errDiagnostics signals a fatal diagnostic that has already been printed.
var errDiagnostics = errors.New("fatal diagnostics reported")

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(codesCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги; check разбирает свои аргументы сам
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintf(os.Stderr, "cfgcheck: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves an auto|on|off setting against the writer output goes
// to. In auto mode only a terminal file gets colour.
func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "", "auto":
		f, ok := w.(*os.File)
		return ok && isTerminal(f), nil
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid color value %q (expected auto|on|off)", mode)
}
