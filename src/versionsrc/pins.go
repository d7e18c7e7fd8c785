package versionsrc

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Pins serves versions pinned in a TOML file:
//
//	[versions]
//	base   = "3"
//	numpy  = "1"
//	pandas = "2"
type Pins struct {
	versions map[string]string
}

type pinsFile struct {
	Versions map[string]string `toml:"versions"`
}

// LoadPins parses a pin file. The whole table is read up front; the returned
// source never touches the filesystem again.
func LoadPins(path string) (*Pins, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f pinsFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &Pins{versions: f.Versions}, nil
}

func (p *Pins) Read(key string) (string, error) {
	v, ok := p.versions[key]
	if !ok {
		return "", fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	return v, nil
}
