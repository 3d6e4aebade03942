package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"pseudo/interpreter-go/pkg/driver"
)

var generateDir string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Split the input file into replayable case files",
	Long: `generate parses the input file and writes one case_<N>.json per
case plus a run_manifest.yml naming them, so a batch can be archived
and replayed case by case.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateDir, "dir", ".", "directory for case files and manifest")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := resolvePaths()
	if err != nil {
		return err
	}
	cases, err := driver.ParseInputFile(cfg.Input)
	if err != nil {
		return fmt.Errorf("read input %s: %w", cfg.Input, err)
	}
	manifest, err := driver.GenerateCaseFiles(cases, generateDir, cfg.Source)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "run %s: wrote %d case file(s) and %s\n",
		manifest.RunID, len(manifest.CaseFiles), filepath.Join(generateDir, driver.ManifestFile))
	return nil
}
