package service

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/stoq-client/internal/logger"
	"github.com/MKhiriev/stoq-client/internal/store"
)

type bundleService struct {
	source store.BundleSource

	logger *logger.Logger
}

func NewBundleService(source store.BundleSource, logger *logger.Logger) BundleService {
	return &bundleService{source: source, logger: logger}
}

func (s *bundleService) Listing(ctx context.Context) ([]byte, error) {
	manifest, err := s.source.Manifest(ctx)
	if err != nil {
		return nil, err
	}

	return FormatManifest(manifest), nil
}

func (s *bundleService) OpenBundle(ctx context.Context, name string) (io.ReadSeekCloser, time.Time, error) {
	return s.source.Open(name)
}

func (s *bundleService) LoginConfig(ctx context.Context) ([]byte, error) {
	return s.source.Config()
}
