package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	minipy "github.com/VincTBest/MiniPy"
)

// loadOptions reads interpreter options from a YAML file:
//
//	allow_bare_assignment: true
//	require_semicolon: false
//	comments: true
//	lenient_vars: false
//
// With an empty path, $HOME/.minipy.yaml is used when it exists;
// otherwise the defaults are returned. An explicit path must exist.
func loadOptions(path string) (minipy.Options, error) {
	opts := minipy.DefaultOptions()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return opts, nil
		}
		path = filepath.Join(home, configFile)
		if _, err := os.Stat(path); err != nil {
			return opts, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("cannot read options file: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("malformed options file %s: %w", path, err)
	}
	return opts, nil
}
