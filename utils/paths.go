package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// ProjectRoot walks up from the working directory until it finds go.mod.
// Config and template paths are resolved against it so the tool works no
// matter which directory it is launched from.
func ProjectRoot() (string, error) {
	startDir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if fileExists(filepath.Join(currentDir, "go.mod")) {
			return currentDir, nil
		}
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", fmt.Errorf("go.mod not found above %s", startDir)
}

// EnsureDir creates the directory (and parents) if it does not exist yet.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
