package driver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// RunManifest records one generated batch: the per-case JSON files plus
// enough metadata to replay them against the same source.
type RunManifest struct {
	RunID     string   `yaml:"run_id"`
	Source    string   `yaml:"source"`
	CreatedAt string   `yaml:"created_at"`
	CaseFiles []string `yaml:"case_files"`
}

// ManifestFile is the name of the manifest written next to the case files.
const ManifestFile = "run_manifest.yml"

// GenerateCaseFiles splits a parsed batch into case_<N>.json files in
// dir and writes a YAML manifest listing them. Returns the manifest.
func GenerateCaseFiles(cases []Case, dir, sourcePath string) (*RunManifest, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	manifest := &RunManifest{
		RunID:     uuid.NewString(),
		Source:    sourcePath,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	for idx, c := range cases {
		name := fmt.Sprintf("case_%d.json", idx+1)
		data, err := json.MarshalIndent(caseToWire(c), "", "  ")
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return nil, err
		}
		manifest.CaseFiles = append(manifest.CaseFiles, name)
	}
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestFile), data, 0o644); err != nil {
		return nil, err
	}
	return manifest, nil
}

// LoadRunManifest reads a manifest back for replay.
func LoadRunManifest(path string) (*RunManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var manifest RunManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", path, err)
	}
	return &manifest, nil
}

// ReplayManifest parses every case file the manifest lists, in order.
func ReplayManifest(manifest *RunManifest, dir string) ([]Case, error) {
	var cases []Case
	for _, name := range manifest.CaseFiles {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		c, err := decodeJSONCase(raw)
		if err != nil {
			return nil, fmt.Errorf("manifest: case %s: %w", name, err)
		}
		cases = append(cases, c)
	}
	return cases, nil
}

func caseToWire(c Case) jsonCase {
	switch c.Kind {
	case CaseVarAssign:
		return jsonCase{Type: "var_assign", Var: c.Var, Value: c.Value}
	case CaseExpr:
		return jsonCase{Type: "dsl_expr", Expr: c.Expr}
	default:
		args := c.Args
		if args == nil {
			args = []any{}
		}
		return jsonCase{Algo: c.Algo, Args: args, Store: c.Store}
	}
}
