package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathValidator checks local file paths for documents, databases and
// config files.
type PathValidator struct {
	// AllowedBaseDirs restricts paths to these directories. Empty allows all.
	AllowedBaseDirs []string
	MaxPathLength   int
}

// NewPathValidator allows any directory.
func NewPathValidator() *PathValidator {
	return &PathValidator{MaxPathLength: 4096}
}

// ValidateFile expands ~/, makes the path absolute, checks it and makes sure
// it does not name a directory.
func (v *PathValidator) ValidateFile(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}
	if len(path) > v.MaxPathLength {
		return "", fmt.Errorf("path too long (max %d characters)", v.MaxPathLength)
	}
	for _, char := range path {
		if char == 0 {
			return "", fmt.Errorf("path contains null bytes")
		}
		if char < 32 && char != '\t' {
			return "", fmt.Errorf("path contains control characters")
		}
	}
	for _, component := range strings.Split(filepath.ToSlash(path), "/") {
		if component == ".." {
			return "", fmt.Errorf("directory traversal not allowed")
		}
	}

	expanded, err := ExpandPath(path)
	if err != nil {
		return "", err
	}
	if err := v.validateBaseDirs(expanded); err != nil {
		return "", err
	}

	if info, err := os.Stat(expanded); err == nil && info.IsDir() {
		return "", fmt.Errorf("path is a directory, not a file: %s", expanded)
	}
	return expanded, nil
}

func (v *PathValidator) validateBaseDirs(path string) error {
	if len(v.AllowedBaseDirs) == 0 {
		return nil
	}
	for _, baseDir := range v.AllowedBaseDirs {
		absBaseDir, err := filepath.Abs(baseDir)
		if err != nil {
			continue
		}
		relPath, err := filepath.Rel(absBaseDir, path)
		if err != nil {
			continue
		}
		if relPath != ".." && !strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
			return nil
		}
	}
	return fmt.Errorf("path not within allowed directories: %v", v.AllowedBaseDirs)
}

// ExpandPath expands a leading ~/ and returns a clean absolute path.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	} else if strings.HasPrefix(path, "~") {
		return "", fmt.Errorf("invalid tilde usage in %q", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("cannot make path absolute: %w", err)
	}
	return abs, nil
}
