// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	Discovery struct {
		ServiceType   string   `json:"service_type"`
		Domain        string   `json:"domain"`
		BrowseTimeout   Duration `json:"browse_timeout"`
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"discovery,omitempty"`

	Sync struct {
		AppDir           string   `json:"app_dir"`
		Bundles          []string `json:"bundles"`
		ExecutableBundle string   `json:"executable_bundle"`
		ConfigFile       string   `json:"config_file"`
		PasswordScheme   string   `json:"password_scheme"`
		Scheme           string   `json:"scheme"`
		RequestTimeout   Duration `json:"request_timeout"`
	} `json:"sync,omitempty"`

	Launch struct {
		Interpreter   string `json:"interpreter"`
		SearchPathEnv string `json:"search_path_env"`
	} `json:"launch,omitempty"`

	Backup struct {
		Interpreter string `json:"interpreter"`
		Script      string `json:"script"`
	} `json:"backup,omitempty"`

	Publisher struct {
		Address      string `json:"address"`
		BundleDir    string `json:"bundle_dir"`
		ConfigFile   string `json:"config_file"`
		Username     string `json:"username"`
		PasswordHash string `json:"password_hash"`
		Instance     string `json:"instance"`
	} `json:"publisher,omitempty"`

	Log struct {
		File string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Discovery: Discovery{
			ServiceType:     jsonCfg.Discovery.ServiceType,
			Domain:          jsonCfg.Discovery.Domain,
			BrowseTimeout:   time.Duration(jsonCfg.Discovery.BrowseTimeout),
			RefreshInterval: time.Duration(jsonCfg.Discovery.RefreshInterval),
		},
		Sync: Sync{
			AppDir:           jsonCfg.Sync.AppDir,
			Bundles:          jsonCfg.Sync.Bundles,
			ExecutableBundle: jsonCfg.Sync.ExecutableBundle,
			ConfigFile:       jsonCfg.Sync.ConfigFile,
			PasswordScheme:   jsonCfg.Sync.PasswordScheme,
			Scheme:           jsonCfg.Sync.Scheme,
			RequestTimeout:   time.Duration(jsonCfg.Sync.RequestTimeout),
		},
		Launch: Launch{
			Interpreter:   jsonCfg.Launch.Interpreter,
			SearchPathEnv: jsonCfg.Launch.SearchPathEnv,
		},
		Backup: Backup{
			Interpreter: jsonCfg.Backup.Interpreter,
			Script:      jsonCfg.Backup.Script,
		},
		Publisher: Publisher{
			Address:      jsonCfg.Publisher.Address,
			BundleDir:    jsonCfg.Publisher.BundleDir,
			ConfigFile:   jsonCfg.Publisher.ConfigFile,
			Username:     jsonCfg.Publisher.Username,
			PasswordHash: jsonCfg.Publisher.PasswordHash,
			Instance:     jsonCfg.Publisher.Instance,
		},
		Log: Log{
			File: jsonCfg.Log.File,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
