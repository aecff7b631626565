package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/stoq-client/internal/adapter"
	"github.com/MKhiriev/stoq-client/internal/config"
	"github.com/MKhiriev/stoq-client/internal/logger"
	"github.com/MKhiriev/stoq-client/internal/store"
	"github.com/MKhiriev/stoq-client/internal/utils"
	"github.com/MKhiriev/stoq-client/internal/validators"
	"github.com/MKhiriev/stoq-client/models"
)

type clientSyncService struct {
	cache      store.BundleCache
	configFile store.ConfigFileStore
	newAdapter adapter.Factory
	validator  validators.Validator

	bundles          []string
	executableBundle string

	logger *logger.Logger
}

// NewClientSyncService wires the synchronizer to the client storages. A new
// adapter is built from newAdapter on every Synchronize call.
func NewClientSyncService(storages *store.ClientStorages, newAdapter adapter.Factory, cfg config.ClientSync, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		cache:            storages.BundleCache,
		configFile:       storages.ConfigFile,
		newAdapter:       newAdapter,
		validator:        validators.NewSyncValidator(),
		bundles:          append([]string(nil), cfg.Bundles...),
		executableBundle: cfg.ExecutableBundle,
		logger:           logger,
	}
}

func (s *clientSyncService) Synchronize(ctx context.Context, server models.ServerKey, creds models.Credentials) (models.SyncResult, error) {
	result := models.SyncResult{AttemptID: utils.NewID()}
	ctx = utils.WithAttemptID(ctx, result.AttemptID)
	log := s.logger.ForAttempt(result.AttemptID)

	if len(s.bundles) == 0 {
		return result, ErrNoBundlesConfigured
	}

	request := validators.SyncRequest{Server: server, Credentials: creds, Bundles: s.bundles}
	if err := s.validator.Validate(ctx, request); err != nil {
		return result, fmt.Errorf("%w: %w", ErrInvalidSyncRequest, err)
	}

	log.Info().Str("server", server.String()).Str("username", creds.Username).Msg("sync started")

	serverAdapter, err := s.newAdapter(server, creds)
	if err != nil {
		return result, fmt.Errorf("connect to %s: %w", server, err)
	}

	if err = s.ensureConfig(ctx, serverAdapter, log); err != nil {
		log.Err(err).Msg("sync failed")
		return result, err
	}

	manifest, err := s.fetchManifest(ctx, serverAdapter)
	if err != nil {
		log.Err(err).Msg("sync failed")
		return result, err
	}

	for _, name := range s.bundles {
		downloaded, err := s.syncBundle(ctx, serverAdapter, name, manifest[name], log)
		if err != nil {
			log.Err(err).Str("bundle", name).Msg("sync failed")
			return result, err
		}
		if downloaded {
			result.Downloaded = append(result.Downloaded, name)
		}

		path := s.cache.Path(name)
		result.SearchPaths = append(result.SearchPaths, path)
		if name == s.executableBundle {
			result.ExecutablePath = path
		}
	}

	log.Info().
		Strs("downloaded", result.Downloaded).
		Str("executable", result.ExecutablePath).
		Msg("sync finished")
	return result, nil
}

// ensureConfig fetches /login once per installation.
func (s *clientSyncService) ensureConfig(ctx context.Context, serverAdapter adapter.BundleServerAdapter, log *logger.Logger) error {
	exists, err := s.configFile.Exists()
	if err != nil {
		return fmt.Errorf("check config file: %w", err)
	}
	if exists {
		return nil
	}

	body, err := serverAdapter.FetchConfig(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigFetch, mapAdapterError(err))
	}
	if err = s.configFile.Save(bytes.NewReader(body)); err != nil {
		return fmt.Errorf("save config file: %w", err)
	}

	log.Info().Int("bytes", len(body)).Msg("client config stored")
	return nil
}

func (s *clientSyncService) fetchManifest(ctx context.Context, serverAdapter adapter.BundleServerAdapter) (models.Manifest, error) {
	body, err := serverAdapter.FetchManifest(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifestFetch, mapAdapterError(err))
	}

	manifest, err := ParseManifest(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifestFetch, err)
	}

	for _, name := range s.bundles {
		if _, ok := manifest.Checksum(name); !ok {
			return nil, fmt.Errorf("%w: required bundle %s is not listed", ErrManifestFetch, name)
		}
	}
	return manifest, nil
}

// syncBundle verifies one cached bundle and downloads it at most once when
// it is missing or stale.
func (s *clientSyncService) syncBundle(ctx context.Context, serverAdapter adapter.BundleServerAdapter, name, expected string, log *logger.Logger) (bool, error) {
	if ok, err := s.verify(name, expected); err != nil || ok {
		if ok {
			log.Debug().Str("bundle", name).Msg("bundle is up to date")
		}
		return false, err
	}

	log.Info().Str("bundle", name).Msg("downloading bundle")
	body, err := serverAdapter.FetchBundle(ctx, name)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrBundleDownload, name, mapAdapterError(err))
	}
	defer body.Close()

	if err = s.cache.Write(name, body); err != nil {
		return true, fmt.Errorf("%w: %s: %w", ErrBundleDownload, name, err)
	}

	sum, ok, err := s.cache.Checksum(name)
	if err != nil {
		return true, fmt.Errorf("checksum bundle %s: %w", name, err)
	}
	if !ok || !strings.EqualFold(sum, expected) {
		return true, &IntegrityError{Bundle: name, Expected: expected, Actual: sum}
	}
	return true, nil
}

func (s *clientSyncService) verify(name, expected string) (bool, error) {
	sum, ok, err := s.cache.Checksum(name)
	if err != nil {
		return false, fmt.Errorf("checksum cached bundle %s: %w", name, err)
	}
	return ok && strings.EqualFold(sum, expected), nil
}
