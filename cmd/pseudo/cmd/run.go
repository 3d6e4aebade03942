package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pseudo/interpreter-go/pkg/driver"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the case batch from the input file",
	Long: `run compiles the source file, parses the input file into cases, and
executes them in order. One output slot is written per case (variable
assignments excepted); a failing case records an error object and the
batch continues.`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := resolvePaths()
	if err != nil {
		return err
	}
	interp, err := loadInterpreter(cfg, true)
	if err != nil {
		return err
	}
	cases, err := driver.ParseInputFile(cfg.Input)
	if err != nil {
		return fmt.Errorf("read input %s: %w", cfg.Input, err)
	}
	outputs := driver.NewRunner(interp).RunCases(cases)
	if err := driver.WriteOutputs(outputs, cfg.Output); err != nil {
		return fmt.Errorf("write output %s: %w", cfg.Output, err)
	}
	fmt.Fprintf(os.Stdout, "ran %d case(s), wrote %s\n", len(cases), cfg.Output)
	maybeShowList(interp)
	return nil
}
