package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

type configFile struct {
	path string
}

// NewConfigFileStore returns a [ConfigFileStore] for the file at path.
func NewConfigFileStore(path string) ConfigFileStore {
	return &configFile{path: path}
}

func (c *configFile) Exists() (bool, error) {
	_, err := os.Stat(c.path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat config file: %w", err)
	}
}

func (c *configFile) Save(r io.Reader) error {
	return writeFileAtomic(c.path, r, 0o600)
}
