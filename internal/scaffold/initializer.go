package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dyluth/acrylic/internal/config"
)

//go:embed templates/*
var templatesFS embed.FS

// Initialize writes a starter acrylic.yml into dir.
// If force is true, an existing acrylic.yml is replaced.
func Initialize(dir string, force bool) (string, error) {
	path := filepath.Join(dir, config.DefaultFile)

	if !force {
		if err := CheckExisting(dir); err != nil {
			return "", err
		}
	}

	content, err := templatesFS.ReadFile("templates/acrylic.yml.tmpl")
	if err != nil {
		return "", fmt.Errorf("failed to read %s template: %w", config.DefaultFile, err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	// The starter file must load cleanly, palettes included.
	if _, err := config.Load(path); err != nil {
		return "", fmt.Errorf("created %s is not valid: %w", path, err)
	}

	return path, nil
}

// CheckExisting returns an error if dir already holds an acrylic.yml.
func CheckExisting(dir string) error {
	path := filepath.Join(dir, config.DefaultFile)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("already initialized: found existing %s", path)
	}
	return nil
}
