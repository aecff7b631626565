// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// ClientDiscovery holds the browse settings used by the sync client.
type ClientDiscovery struct {
	ServiceType     string
	Domain          string
	BrowseTimeout   time.Duration
	RefreshInterval time.Duration
}

// ClientSync holds the bundle synchronizer settings.
type ClientSync struct {
	// CacheDir is the local bundle cache directory (AppDir/eggs).
	CacheDir         string
	ConfigFile       string
	Bundles          []string
	ExecutableBundle string
	PasswordScheme   string
	Scheme           string
	RequestTimeout   time.Duration
}

// ClientLaunch holds the executable bundle launch settings.
type ClientLaunch struct {
	Interpreter   string
	SearchPathEnv string
}

// ClientConfig is the sync client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Discovery ClientDiscovery
	Sync      ClientSync
	Launch    ClientLaunch
	LogFile   string
}

// BackupConfig is the backup proxy configuration.
type BackupConfig struct {
	Interpreter string
	Script      string
	LogFile     string
}

// PublisherConfig is the bundle publisher configuration.
type PublisherConfig struct {
	Address      string
	BundleDir    string
	ConfigFile   string
	Username     string
	PasswordHash string
	Instance     string
	ServiceType  string
	Domain       string
}

// GetClientConfig builds and validates the sync client view of the merged
// configuration.
func GetClientConfig(flags *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// GetBackupConfig builds and validates the backup proxy view of the merged
// configuration.
func GetBackupConfig(flags *StructuredConfig) (*BackupConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	backupCfg := &BackupConfig{
		Interpreter: cfg.Backup.Interpreter,
		Script:      cfg.Backup.Script,
		LogFile:     cfg.Log.File,
	}
	return backupCfg, backupCfg.validate()
}

// GetPublisherConfig builds and validates the bundle publisher view of the
// merged configuration.
func GetPublisherConfig(flags *StructuredConfig) (*PublisherConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	publisherCfg := &PublisherConfig{
		Address:      cfg.Publisher.Address,
		BundleDir:    cfg.Publisher.BundleDir,
		ConfigFile:   cfg.Publisher.ConfigFile,
		Username:     cfg.Publisher.Username,
		PasswordHash: cfg.Publisher.PasswordHash,
		Instance:     cfg.Publisher.Instance,
		ServiceType:  cfg.Discovery.ServiceType,
		Domain:       cfg.Discovery.Domain,
	}
	return publisherCfg, publisherCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Discovery: ClientDiscovery{
			ServiceType:     cfg.Discovery.ServiceType,
			Domain:          cfg.Discovery.Domain,
			BrowseTimeout:   cfg.Discovery.BrowseTimeout,
			RefreshInterval: cfg.Discovery.RefreshInterval,
		},
		Sync: ClientSync{
			CacheDir:         filepath.Join(cfg.Sync.AppDir, eggsDirName),
			ConfigFile:       cfg.Sync.ConfigFile,
			Bundles:          cfg.Sync.Bundles,
			ExecutableBundle: cfg.Sync.ExecutableBundle,
			PasswordScheme:   cfg.Sync.PasswordScheme,
			Scheme:           cfg.Sync.Scheme,
			RequestTimeout:   cfg.Sync.RequestTimeout,
		},
		Launch: ClientLaunch{
			Interpreter:   cfg.Launch.Interpreter,
			SearchPathEnv: cfg.Launch.SearchPathEnv,
		},
		LogFile: cfg.Log.File,
	}
}
