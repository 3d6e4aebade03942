// Package cmd wires the pseudo CLI: compile a pseudocode source, run
// case batches against it, generate replayable case files, or explore
// interactively.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pseudo/interpreter-go/pkg/driver"
	"pseudo/interpreter-go/pkg/interpreter"
)

var (
	cfgFile  string
	srcFile  string
	inFile   string
	outFile  string
	showList bool
)

var rootCmd = &cobra.Command{
	Use:   "pseudo",
	Short: "Compile and run line-oriented pseudocode",
	Long: `pseudo compiles Algorithm blocks from a pseudocode source file and
executes batches of invocations against them. Values are persistent
lists and binary trees; results are written as JSON with an ASCII
visualization appendix for tree outputs.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./pseudo.toml)")
	rootCmd.PersistentFlags().StringVar(&srcFile, "src", "", "pseudocode source file")
	rootCmd.PersistentFlags().StringVar(&inFile, "in", "", "input file listing cases")
	rootCmd.PersistentFlags().StringVar(&outFile, "out", "", "output file for results")
	rootCmd.PersistentFlags().BoolVar(&showList, "show-list", false, "print the dsl_result list after the batch")
}

// resolvePaths merges flags over the config file defaults.
func resolvePaths() (driver.Config, error) {
	cfg, err := driver.LoadConfig(cfgFile)
	if err != nil {
		return cfg, err
	}
	if srcFile != "" {
		cfg.Source = srcFile
	}
	if inFile != "" {
		cfg.Input = inFile
	}
	if outFile != "" {
		cfg.Output = outFile
	}
	return cfg, nil
}

// loadInterpreter compiles the configured source. A missing source file
// is an error only when required is set; the REPL starts fine without one.
func loadInterpreter(cfg driver.Config, required bool) (*interpreter.Interpreter, error) {
	interp := interpreter.New()
	data, err := os.ReadFile(cfg.Source)
	if err != nil {
		if required {
			return nil, fmt.Errorf("read source %s: %w", cfg.Source, err)
		}
		return interp, nil
	}
	if err := interp.LoadSource(string(data)); err != nil {
		return nil, fmt.Errorf("compile %s: %w", cfg.Source, err)
	}
	return interp, nil
}

func maybeShowList(interp *interpreter.Interpreter) {
	if !showList {
		return
	}
	if text, ok := driver.ShowList(interp); ok {
		fmt.Fprintln(os.Stdout, text)
	}
}
