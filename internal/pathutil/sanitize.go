package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// SanitizeOutputPath validates and cleans an output file path.
// It resolves ".." components via filepath.Clean + filepath.Abs, rejects
// paths that resolve to symlinks and paths that would overwrite one of the
// inputs. New files in existing directories are accepted. Returns the cleaned
// absolute path.
func SanitizeOutputPath(path string, inputs ...string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("pathutil: cannot resolve absolute path: %w", err)
	}

	for _, input := range inputs {
		absInput, err := filepath.Abs(filepath.Clean(input))
		if err != nil {
			return "", fmt.Errorf("pathutil: invalid input path %s: %w", input, err)
		}
		if absInput == abs {
			return "", fmt.Errorf("pathutil: output file %s would overwrite input file %s", path, input)
		}
	}

	info, err := os.Lstat(abs)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("pathutil: refusing to write to symlink: %s", abs)
		}
	case os.IsNotExist(err):
		// New file.
	default:
		return "", fmt.Errorf("pathutil: cannot stat path: %w", err)
	}

	return abs, nil
}
