package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// ReadSecureFile reads a file through an os.OpenRoot scoped to the file's
// directory, so a crafted path cannot escape it via symlinks or .. elements.
func ReadSecureFile(path string) ([]byte, error) {
	absPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("invalid file path: %w", err)
	}

	dir := filepath.Dir(absPath)
	fileName := filepath.Base(absPath)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot create root for directory: %w", err)
	}
	defer func() {
		if closeErr := root.Close(); closeErr != nil {
			log.Warnf("failed to close root: %v", closeErr)
		}
	}()

	info, err := root.Stat(fileName)
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file")
	}

	file, err := root.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Warnf("failed to close file: %v", closeErr)
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return data, nil
}
