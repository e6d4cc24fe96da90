package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Template is the commented configuration file written by WriteTemplate.
// Every setting in it is a default, so loading it changes nothing.
//
//go:embed template.yaml
var Template []byte

// ErrConfigExists is returned by WriteTemplate when path already exists
// and overwriting was not requested.
var ErrConfigExists = errors.New("configuration file already exists")

const (
	templateDirPerm  = 0o750
	templateFilePerm = 0o600
)

// WriteTemplate writes Template to path, creating parent directories.
// An existing file is replaced only when force is true.
func WriteTemplate(path string, force bool) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, templateDirPerm); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flag |= os.O_EXCL
	}

	f, err := os.OpenFile(path, flag, templateFilePerm) //nolint:gosec // User-provided output path is intentional
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}
	if err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	if _, err := f.Write(Template); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	return f.Close()
}
