package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pseudo/interpreter-go/pkg/check"
	"pseudo/interpreter-go/pkg/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Statically inspect the source file",
	Long: `check compiles the source and reports problems that would otherwise
only surface mid-execution: calls to unknown names, wrong builtin
arity, and lines that can never evaluate.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := resolvePaths()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(cfg.Source)
	if err != nil {
		return fmt.Errorf("read source %s: %w", cfg.Source, err)
	}
	defs, err := parser.Compile(string(data))
	if err != nil {
		return err
	}
	diags := check.Check(defs)
	if len(diags) == 0 {
		fmt.Fprintf(os.Stdout, "%s: %d algorithm(s), no findings\n", cfg.Source, len(defs))
		return nil
	}
	for _, d := range diags {
		fmt.Fprintln(os.Stdout, d.String())
	}
	return fmt.Errorf("%d finding(s) in %d algorithm(s)", len(diags), len(check.Names(diags)))
}
