// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultServiceType      = "_stoqserver._tcp"
	DefaultDomain           = "local."
	DefaultExecutableBundle = "stoq.egg"
	DefaultInterpreter      = "python2"
	DefaultSearchPathEnv    = "PYTHONPATH"
	DefaultPasswordScheme   = PasswordSchemeMD5
	DefaultScheme           = "http"
	DefaultPublisherAddress = ":6971"

	appDirName     = ".stoqserver"
	eggsDirName    = "eggs"
	configFileName = "stoq.conf"
)

// Password encodings accepted by Sync.PasswordScheme.
const (
	PasswordSchemeMD5   = "md5"
	PasswordSchemePlain = "plain"
)

// DefaultBundles is the required bundle set, in install order.
var DefaultBundles = []string{"kiwi.egg", "stoqdrivers.egg", "stoq.egg"}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Discovery: Discovery{
			ServiceType:     DefaultServiceType,
			Domain:          DefaultDomain,
			BrowseTimeout:   5 * time.Second,
			RefreshInterval: 30 * time.Second,
		},
		Sync: Sync{
			AppDir:           defaultAppDir(),
			Bundles:          append([]string(nil), DefaultBundles...),
			ExecutableBundle: DefaultExecutableBundle,
			PasswordScheme:   DefaultPasswordScheme,
			Scheme:           DefaultScheme,
		},
		Launch: Launch{
			Interpreter:   DefaultInterpreter,
			SearchPathEnv: DefaultSearchPathEnv,
		},
		Backup: Backup{
			Interpreter: DefaultInterpreter,
		},
		Publisher: Publisher{
			Address: DefaultPublisherAddress,
		},
	}
}

// applyDerivedDefaults fills values that depend on other, already merged
// values.
func (cfg *StructuredConfig) applyDerivedDefaults() {
	if cfg.Sync.ConfigFile == "" && cfg.Sync.AppDir != "" {
		cfg.Sync.ConfigFile = filepath.Join(cfg.Sync.AppDir, configFileName)
	}
}

func defaultAppDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return appDirName
	}
	return filepath.Join(home, appDirName)
}
