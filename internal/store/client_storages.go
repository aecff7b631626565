package store

import (
	"fmt"

	"github.com/MKhiriev/stoq-client/internal/config"
	"github.com/MKhiriev/stoq-client/internal/logger"
)

// ClientStorages groups the client-side file stores passed to the service
// layer.
type ClientStorages struct {
	// BundleCache holds the verified bundle files.
	BundleCache BundleCache

	// ConfigFile is the configuration fetched once per installation.
	ConfigFile ConfigFileStore
}

// NewClientStorages creates the bundle cache directory (if absent) and wires
// the configuration file store.
func NewClientStorages(cfg config.ClientSync, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("cache_dir", cfg.CacheDir).Msg("creating client storages...")

	cache, err := NewBundleFileCache(cfg.CacheDir, logger)
	if err != nil {
		return nil, fmt.Errorf("bundle cache: %w", err)
	}

	return &ClientStorages{
		BundleCache: cache,
		ConfigFile:  NewConfigFileStore(cfg.ConfigFile),
	}, nil
}
