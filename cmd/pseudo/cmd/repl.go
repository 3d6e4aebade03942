package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"pseudo/interpreter-go/pkg/interpreter"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate expressions interactively",
	Long: `repl reads expressions against the compiled source, one per line.
Assignments of the form "name = expr" bind globals for later lines.
Type :list for registered algorithms, :quit to leave.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := resolvePaths()
	if err != nil {
		return err
	}
	interp, err := loadInterpreter(cfg, false)
	if err != nil {
		return err
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt("pseudo> ")
		if err != nil {
			// io.EOF or liner.ErrPromptAborted both end the session.
			fmt.Fprintln(os.Stdout)
			return nil
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		switch input {
		case ":quit", ":q":
			return nil
		case ":list":
			names := interp.AlgorithmNames()
			sort.Strings(names)
			for _, name := range names {
				def, _ := interp.Lookup(name)
				fmt.Fprintf(os.Stdout, "%s(%s)\n", name, strings.Join(def.Params, ", "))
			}
			continue
		}

		if name, expr, ok := splitAssignment(input); ok {
			val, err := interp.EvalExpression(expr, nil)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}
			interp.Globals().Define(name, val)
			continue
		}

		val, err := interp.EvalExpression(input, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(os.Stdout, interpreter.FormatValue(val))
	}
}

// splitAssignment recognizes `name = expr` lines, leaving comparison
// operators alone.
func splitAssignment(input string) (string, string, bool) {
	for i := 0; i < len(input); i++ {
		if input[i] != '=' {
			continue
		}
		if i+1 < len(input) && input[i+1] == '=' {
			i++
			continue
		}
		if i > 0 {
			switch input[i-1] {
			case '=', '<', '>', '!':
				continue
			}
		}
		name := strings.TrimSpace(input[:i])
		if !isIdentName(name) {
			return "", "", false
		}
		return name, strings.TrimSpace(input[i+1:]), true
	}
	return "", "", false
}

func isIdentName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
