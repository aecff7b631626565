package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/stoq-client/internal/logger"
	"github.com/MKhiriev/stoq-client/internal/utils"
	"github.com/MKhiriev/stoq-client/internal/validators"
)

type bundleFileCache struct {
	dir    string
	logger *logger.Logger
}

// NewBundleFileCache returns a [BundleCache] rooted at dir, creating the
// directory if it does not exist.
func NewBundleFileCache(dir string, logger *logger.Logger) (BundleCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create bundle cache dir: %w", err)
	}

	return &bundleFileCache{dir: dir, logger: logger}, nil
}

func (c *bundleFileCache) Path(name string) string {
	return filepath.Join(c.dir, name)
}

func (c *bundleFileCache) Checksum(name string) (string, bool, error) {
	if !validators.ValidBundleName(name) {
		return "", false, fmt.Errorf("%w: %q", ErrInvalidBundleName, name)
	}

	return utils.FileChecksum(c.Path(name))
}

func (c *bundleFileCache) Write(name string, r io.Reader) error {
	if !validators.ValidBundleName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidBundleName, name)
	}

	path := c.Path(name)
	if err := writeFileAtomic(path, r, 0o644); err != nil {
		return err
	}

	c.logger.Debug().Str("bundle", name).Str("path", path).Msg("bundle written to cache")
	return nil
}
