package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FindOptionsPath looks for the options file in common locations. An empty
// return means no file; defaults apply.
func FindOptionsPath(explicit string) string {
	if explicit != "" {
		return explicit
	}

	paths := []string{
		".github/repoagent.yaml",
		".github/repoagent.yml",
		"repoagent.yaml",
		"repoagent.yml",
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func loadOptions(path string) (Options, error) {
	var opts Options
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read options file: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse options file: %w", err)
	}
	return opts, nil
}
