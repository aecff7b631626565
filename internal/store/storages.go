package store

import (
	"fmt"

	"github.com/MKhiriev/stoq-client/internal/config"
	"github.com/MKhiriev/stoq-client/internal/logger"
)

// Storages groups the publisher-side stores.
type Storages struct {
	Bundles BundleSource
}

// NewStorages opens the published bundle directory.
func NewStorages(cfg config.PublisherConfig, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("bundle_dir", cfg.BundleDir).Msg("creating publisher storages...")

	bundles, err := NewBundleDirectory(cfg.BundleDir, cfg.ConfigFile, logger)
	if err != nil {
		return nil, fmt.Errorf("bundle directory: %w", err)
	}

	return &Storages{Bundles: bundles}, nil
}
