package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pseudo/interpreter-go/pkg/driver"
)

var execCmd = &cobra.Command{
	Use:   "exec <case>...",
	Short: "Execute invocations given on the command line",
	Long: `exec runs one case per argument. A case is a JSON object
({"algo": "Name", "args": [...]}), an @file reference to one, or the
colon form "Name: arg1, arg2". Results print to stdout, one per line.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

func init() {
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	cfg, err := resolvePaths()
	if err != nil {
		return err
	}
	interp, err := loadInterpreter(cfg, true)
	if err != nil {
		return err
	}
	var cases []driver.Case
	for _, arg := range args {
		c, err := driver.ParseExecCase(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping case: %v\n", err)
			continue
		}
		cases = append(cases, c)
	}
	outputs := driver.NewRunner(interp).RunCases(cases)
	text, err := driver.RenderOutputs(outputs)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, text)
	maybeShowList(interp)
	return nil
}
