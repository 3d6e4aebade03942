package driver

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config carries the default file locations the command line falls back
// to. It is read from pseudo.toml in the working directory; a missing
// file yields the built-in defaults.
type Config struct {
	Source string `toml:"source"`
	Input  string `toml:"input"`
	Output string `toml:"output"`
}

// DefaultConfigFile is the config filename probed in the working directory.
const DefaultConfigFile = "pseudo.toml"

func defaultConfig() Config {
	return Config{
		Source: "algorithm.txt",
		Input:  "input.in",
		Output: "output.out",
	}
}

// LoadConfig reads a TOML config file, filling unset fields with the
// defaults. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		path = DefaultConfigFile
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	var fileCfg Config
	if _, err := toml.DecodeFile(path, &fileCfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if fileCfg.Source != "" {
		cfg.Source = fileCfg.Source
	}
	if fileCfg.Input != "" {
		cfg.Input = fileCfg.Input
	}
	if fileCfg.Output != "" {
		cfg.Output = fileCfg.Output
	}
	return cfg, nil
}
