// Package dictionary loads vocabulary sets from TOML files.
package dictionary

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/tuidrill/internal/vocab"
)

// Ext is the file extension of dictionary files.
const Ext = ".toml"

// LoadError reports a dictionary file that is missing or malformed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("dictionary %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadFile decodes and validates a single dictionary file. Keys that do not map
// onto the set format are returned so callers can warn about them.
func LoadFile(path string) (vocab.Set, []string, error) {
	if _, err := os.Stat(path); err != nil {
		return vocab.Set{}, nil, &LoadError{Path: path, Err: err}
	}
	var raw vocab.Set
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return vocab.Set{}, nil, &LoadError{Path: path, Err: fmt.Errorf("failed to decode: %w", err)}
	}
	set, err := vocab.Validate(raw)
	if err != nil {
		return vocab.Set{}, nil, &LoadError{Path: path, Err: err}
	}
	var unknown []string
	for _, key := range meta.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return set, unknown, nil
}
