package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/stoq-client/internal/logger"
	"github.com/MKhiriev/stoq-client/internal/utils"
	"github.com/MKhiriev/stoq-client/internal/validators"
	"github.com/MKhiriev/stoq-client/models"
)

// bundleDirectory publishes every regular, non-hidden file of dir as a
// bundle. Checksums are recomputed on each Manifest call so bundles can be
// replaced while the publisher runs.
type bundleDirectory struct {
	dir        string
	configFile string
	logger     *logger.Logger
}

// NewBundleDirectory returns a [BundleSource] backed by dir. configFile is
// served at /login; it may be empty.
func NewBundleDirectory(dir, configFile string, logger *logger.Logger) (BundleSource, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("bundle dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("bundle dir %s is not a directory", dir)
	}

	return &bundleDirectory{dir: dir, configFile: configFile, logger: logger}, nil
}

func (b *bundleDirectory) Manifest(ctx context.Context) (models.Manifest, error) {
	entries, err := os.ReadDir(b.dir)
	if err != nil {
		return nil, fmt.Errorf("read bundle dir: %w", err)
	}

	manifest := make(models.Manifest, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		sum, ok, err := utils.FileChecksum(filepath.Join(b.dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if !ok {
			// removed between ReadDir and Open
			continue
		}
		manifest[entry.Name()] = sum
	}

	b.logger.Debug().Int("bundles", len(manifest)).Msg("manifest computed")
	return manifest, nil
}

func (b *bundleDirectory) Open(name string) (io.ReadSeekCloser, time.Time, error) {
	if !validators.ValidBundleName(name) || strings.HasPrefix(name, ".") {
		return nil, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidBundleName, name)
	}

	f, err := os.Open(filepath.Join(b.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, time.Time{}, fmt.Errorf("%w: %s", ErrBundleNotFound, name)
		}
		return nil, time.Time{}, fmt.Errorf("open bundle: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, time.Time{}, fmt.Errorf("stat bundle: %w", err)
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, time.Time{}, fmt.Errorf("%w: %s", ErrBundleNotFound, name)
	}

	return f, info.ModTime(), nil
}

func (b *bundleDirectory) Config() ([]byte, error) {
	if b.configFile == "" {
		return nil, ErrConfigNotConfigured
	}

	data, err := os.ReadFile(b.configFile)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return data, nil
}
