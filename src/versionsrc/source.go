// Package versionsrc supplies raw version strings to a generation run.
// Every source reads a key at most once per run and has no side effects;
// how the strings are stored (version files, a pin file, git tags) is an
// implementation detail behind the one-method contract.
package versionsrc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound reports a key the source has no version for.
var ErrNotFound = errors.New("version not found")

// Source supplies one version string per key.
type Source interface {
	Read(key string) (string, error)
}

// Dir reads versions from <Root>/<key>/<File>, one version file per target
// directory.
type Dir struct {
	Root string
	File string // version file name; default "VERSION"
}

func (d Dir) Read(key string) (string, error) {
	name := d.File
	if name == "" {
		name = "VERSION"
	}
	path := filepath.Join(d.Root, key, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// File reads one fixed key from a single plain-text file. Reads of any other
// key report ErrNotFound, so File composes with Mux.
type File struct {
	Key  string
	Path string
}

func (f File) Read(key string) (string, error) {
	if key != f.Key {
		return "", fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", f.Path, ErrNotFound)
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Static serves versions from an in-memory table.
type Static map[string]string

func (s Static) Read(key string) (string, error) {
	v, ok := s[key]
	if !ok {
		return "", fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	return v, nil
}

// Mux routes reads across sources in order; the first source that does not
// report ErrNotFound wins.
type Mux []Source

func (m Mux) Read(key string) (string, error) {
	for _, s := range m {
		v, err := s.Read(key)
		if err != nil && errors.Is(err, ErrNotFound) {
			continue
		}
		return v, err
	}
	return "", fmt.Errorf("%s: %w", key, ErrNotFound)
}
