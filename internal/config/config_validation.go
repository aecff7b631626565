// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/stoq-client/internal/validators"
)

func (cfg *ClientConfig) validate() error {
	if cfg.Discovery.ServiceType == "" || cfg.Discovery.Domain == "" {
		return ErrInvalidDiscoveryConfigs
	}

	if cfg.Sync.CacheDir == "" || cfg.Sync.ConfigFile == "" {
		return ErrInvalidSyncConfigs
	}
	if len(cfg.Sync.Bundles) == 0 {
		return fmt.Errorf("%w: no required bundles", ErrInvalidSyncConfigs)
	}
	for _, name := range cfg.Sync.Bundles {
		if !isPlainBundleName(name) {
			return fmt.Errorf("%w: bad bundle name %q", ErrInvalidSyncConfigs, name)
		}
	}
	if !slices.Contains(cfg.Sync.Bundles, cfg.Sync.ExecutableBundle) {
		return fmt.Errorf("%w: executable bundle %q is not required", ErrInvalidSyncConfigs, cfg.Sync.ExecutableBundle)
	}
	if cfg.Sync.PasswordScheme != PasswordSchemeMD5 && cfg.Sync.PasswordScheme != PasswordSchemePlain {
		return fmt.Errorf("%w: password scheme %q", ErrInvalidSyncConfigs, cfg.Sync.PasswordScheme)
	}
	if cfg.Sync.Scheme != "http" && cfg.Sync.Scheme != "https" {
		return fmt.Errorf("%w: url scheme %q", ErrInvalidSyncConfigs, cfg.Sync.Scheme)
	}

	if cfg.Launch.Interpreter == "" || cfg.Launch.SearchPathEnv == "" {
		return ErrInvalidLaunchConfigs
	}

	return nil
}

func (cfg *BackupConfig) validate() error {
	if cfg.Interpreter == "" || cfg.Script == "" {
		return ErrInvalidBackupConfigs
	}
	return nil
}

func (cfg *PublisherConfig) validate() error {
	if cfg.Address == "" || cfg.BundleDir == "" {
		return ErrInvalidPublisherConfigs
	}
	if cfg.Username == "" || cfg.PasswordHash == "" {
		return fmt.Errorf("%w: credentials are required", ErrInvalidPublisherConfigs)
	}
	if cfg.Instance != "" && cfg.ServiceType == "" {
		return ErrInvalidDiscoveryConfigs
	}
	return nil
}

// isPlainBundleName reports whether name can be used as a single path
// element inside the cache directory.
func isPlainBundleName(name string) bool {
	return validators.ValidBundleName(name) && !strings.Contains(name, ":")
}
