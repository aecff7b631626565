// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// sync client, the backup proxy and the bundle publisher. It is populated by
// merging values from environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Discovery holds the mDNS service type and browse settings.
	Discovery Discovery `envPrefix:"DISCOVERY_"`

	// Sync holds the bundle synchronization settings: cache location,
	// required bundles and how credentials are sent.
	Sync Sync `envPrefix:"SYNC_"`

	// Launch holds settings for starting the executable bundle after a
	// successful sync.
	Launch Launch `envPrefix:"LAUNCH_"`

	// Backup holds the external backup tool invocation settings.
	Backup Backup `envPrefix:"BACKUP_"`

	// Publisher holds the bundle publisher (server side) settings.
	Publisher Publisher `envPrefix:"PUBLISHER_"`

	// Log holds log output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Discovery configures the service browser and announcer.
type Discovery struct {
	// ServiceType is the mDNS service type, e.g. "_stoqserver._tcp".
	// Env: DISCOVERY_SERVICE_TYPE
	ServiceType string `env:"SERVICE_TYPE"`

	// Domain is the mDNS browse domain, normally "local.".
	// Env: DISCOVERY_DOMAIN
	Domain string `env:"DOMAIN"`

	// BrowseTimeout bounds the non-interactive `discover` command.
	// Env: DISCOVERY_BROWSE_TIMEOUT
	BrowseTimeout time.Duration `env:"BROWSE_TIMEOUT"`

	// RefreshInterval is the length of one browse round. A server that is
	// not seen for two rounds is dropped from the list.
	// Env: DISCOVERY_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Sync configures the bundle synchronizer.
type Sync struct {
	// AppDir is the per-installation directory. The bundle cache lives in
	// AppDir/eggs.
	// Env: SYNC_APP_DIR
	AppDir string `env:"APP_DIR"`

	// Bundles is the ordered list of required bundle names.
	// Env: SYNC_BUNDLES (comma separated)
	Bundles []string `env:"BUNDLES" envSeparator:","`

	// ExecutableBundle names the bundle that is launched after sync. It must
	// be one of Bundles.
	// Env: SYNC_EXECUTABLE_BUNDLE
	ExecutableBundle string `env:"EXECUTABLE_BUNDLE"`

	// ConfigFile is where the /login payload is stored on first sync.
	// Defaults to AppDir/stoq.conf.
	// Env: SYNC_CONFIG_FILE
	ConfigFile string `env:"CONFIG_FILE"`

	// PasswordScheme is how the password is encoded for Basic Auth:
	// "md5" (legacy servers) or "plain".
	// Env: SYNC_PASSWORD_SCHEME
	PasswordScheme string `env:"PASSWORD_SCHEME"`

	// Scheme is the URL scheme used to reach the server: "http" or "https".
	// Env: SYNC_SCHEME
	Scheme string `env:"SCHEME"`

	// RequestTimeout bounds each HTTP request. Zero means no timeout.
	// Env: SYNC_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Launch configures how the executable bundle is started.
type Launch struct {
	// Interpreter runs the executable bundle, e.g. "python2".
	// Env: LAUNCH_INTERPRETER
	Interpreter string `env:"INTERPRETER"`

	// SearchPathEnv is the module search path variable the bundle paths are
	// prepended to, e.g. "PYTHONPATH".
	// Env: LAUNCH_SEARCH_PATH_ENV
	SearchPathEnv string `env:"SEARCH_PATH_ENV"`
}

// Backup configures the external backup tool.
type Backup struct {
	// Interpreter runs the backup script.
	// Env: BACKUP_INTERPRETER
	Interpreter string `env:"INTERPRETER"`

	// Script is the path of the backup tool script.
	// Env: BACKUP_SCRIPT
	Script string `env:"SCRIPT"`
}

// Publisher configures the bundle publisher.
type Publisher struct {
	// Address is the TCP listen address in "host:port" form.
	// Env: PUBLISHER_ADDRESS
	Address string `env:"ADDRESS"`

	// BundleDir is the directory whose files are published as bundles.
	// Env: PUBLISHER_BUNDLE_DIR
	BundleDir string `env:"BUNDLE_DIR"`

	// ConfigFile is served verbatim at /login.
	// Env: PUBLISHER_CONFIG_FILE
	ConfigFile string `env:"CONFIG_FILE"`

	// Username is the only accepted Basic Auth user.
	// Env: PUBLISHER_USERNAME
	Username string `env:"USERNAME"`

	// PasswordHash is the bcrypt hash of the password as transmitted by
	// clients (for md5 clients, of the hex MD5 of the password).
	// Env: PUBLISHER_PASSWORD_HASH
	PasswordHash string `env:"PASSWORD_HASH"`

	// Instance is the mDNS instance name. Empty disables the announcement.
	// Env: PUBLISHER_INSTANCE
	Instance string `env:"INSTANCE"`
}

// Log configures log output.
type Log struct {
	// File is where client-side logs are appended.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads and merges the configuration from all sources in
// the following priority order (later sources override non-zero fields):
//  1. Environment variables
//  2. Command-line flags (flags, as bound by BindClientFlags or
//     BindPublisherFlags and parsed by the caller)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults fill whatever is still empty afterwards.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withJSON().
		withDefaults().
		build()
}
