package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const defaultConfigPath = "site.yaml"

// validateConfigPath checks the site file exists and returns its absolute path.
func validateConfigPath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", fmt.Errorf("config file is required")
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("config path %s is a directory", abs)
	}

	return abs, nil
}
