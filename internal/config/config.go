// Package config loads the optional .loxrc.yaml file that tunes the
// evaluator's ambient robustness knobs (call-depth guard, execution
// tracing) without touching the language itself.
package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Builtins holds overrides for native bindings, used to make tests of the
// "clock" builtin deterministic.
type Builtins struct {
	ClockEpoch *float64 `yaml:"clockEpoch"`
}

// Config is the shape of .loxrc.yaml. Every field has a zero-value default
// matching the interpreter's built-in behavior, so a missing file is
// equivalent to an empty one.
type Config struct {
	MaxCallDepth int      `yaml:"maxCallDepth"`
	TraceCalls   bool     `yaml:"traceCalls"`
	Builtins     Builtins `yaml:"builtins"`
}

const fileName = ".loxrc.yaml"

// Load searches, in order, the current working directory and the
// directory containing scriptPath for a .loxrc.yaml file, and parses the
// first one found. A Config with zero-value defaults is returned, with no
// error, if neither location has one.
func Load(scriptPath string) (*Config, error) {
	for _, dir := range searchDirs(scriptPath) {
		path := filepath.Join(dir, fileName)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		cfg := &Config{}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return &Config{}, nil
}

func searchDirs(scriptPath string) []string {
	dirs := []string{"."}
	if scriptPath != "" && scriptPath != "<eval>" {
		if dir := filepath.Dir(scriptPath); dir != "." {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
