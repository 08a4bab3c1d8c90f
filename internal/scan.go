package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsImageFile reports whether path has a recognized image extension.
// The check is case-insensitive.
func IsImageFile(path string, cfg *Config) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range cfg.ImageExt {
		if ext == e {
			return true
		}
	}
	return false
}

// ScanImageFiles lists image files directly inside inputDir based on
// extension. The scan is not recursive: one directory, one pass.
func ScanImageFiles(inputDir string, cfg *Config) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("error scanning files: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(inputDir, e.Name())
		if IsImageFile(path, cfg) {
			files = append(files, path)
		}
	}
	return files, nil
}
