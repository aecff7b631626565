// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// BindClientFlags registers the sync, launch, discovery and backup flags on
// fs. The returned config is filled in when fs is parsed and is meant to be
// passed to one of the Get*Config functions afterwards.
//
// Flags:
//
//	-c/--config json file path with configs
//	--log-file client log file
//	--service-type mDNS service type
//	--domain mDNS browse domain
//	--browse-timeout duration of the discover command (e.g. "5s")
//	--refresh-interval length of one mDNS browse round (e.g. "30s")
//	--app-dir installation directory holding the bundle cache
//	--bundles comma separated required bundle names
//	--executable-bundle bundle launched after sync
//	--config-file where the /login payload is stored
//	--password-scheme md5 or plain
//	--scheme http or https
//	--request-timeout per-request HTTP timeout (e.g. "30s")
//	--interpreter interpreter running the executable bundle
//	--search-path-env module search path variable
//	--backup-interpreter interpreter running the backup tool
//	--backup-script backup tool script path
func BindClientFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	bindCommonFlags(fs, cfg)
	fs.StringVar(&cfg.Discovery.ServiceType, "service-type", "", "mDNS service type")
	fs.StringVar(&cfg.Discovery.Domain, "domain", "", "mDNS browse domain")
	fs.DurationVar(&cfg.Discovery.BrowseTimeout, "browse-timeout", 0, "Discover duration (e.g., 5s)")
	fs.DurationVar(&cfg.Discovery.RefreshInterval, "refresh-interval", 0, "mDNS browse round length (e.g., 30s)")
	fs.StringVar(&cfg.Sync.AppDir, "app-dir", "", "Installation directory")
	fs.StringSliceVar(&cfg.Sync.Bundles, "bundles", nil, "Required bundle names, in order")
	fs.StringVar(&cfg.Sync.ExecutableBundle, "executable-bundle", "", "Bundle launched after sync")
	fs.StringVar(&cfg.Sync.ConfigFile, "config-file", "", "Local configuration file path")
	fs.StringVar(&cfg.Sync.PasswordScheme, "password-scheme", "", "Password encoding: md5 or plain")
	fs.StringVar(&cfg.Sync.Scheme, "scheme", "", "Server URL scheme: http or https")
	fs.DurationVar(&cfg.Sync.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Launch.Interpreter, "interpreter", "", "Interpreter for the executable bundle")
	fs.StringVar(&cfg.Launch.SearchPathEnv, "search-path-env", "", "Module search path variable")
	fs.StringVar(&cfg.Backup.Interpreter, "backup-interpreter", "", "Interpreter for the backup tool")
	fs.StringVar(&cfg.Backup.Script, "backup-script", "", "Backup tool script path")

	return cfg
}

// BindPublisherFlags registers the bundle publisher flags on fs.
//
// Flags:
//
//	-c/--config json file path with configs
//	--log-file log file (unused by the publisher, accepted for symmetry)
//	-a/--address listen address in format [host]:[port]
//	-d/--bundle-dir directory of published bundles
//	--publish-config-file file served at /login
//	--username accepted Basic Auth user
//	--password-hash bcrypt hash of the transmitted password
//	--instance mDNS instance name
//	--service-type mDNS service type
func BindPublisherFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	bindCommonFlags(fs, cfg)
	fs.StringVarP(&cfg.Publisher.Address, "address", "a", "", "Listen address host:port")
	fs.StringVarP(&cfg.Publisher.BundleDir, "bundle-dir", "d", "", "Published bundle directory")
	fs.StringVar(&cfg.Publisher.ConfigFile, "publish-config-file", "", "File served at /login")
	fs.StringVar(&cfg.Publisher.Username, "username", "", "Accepted user name")
	fs.StringVar(&cfg.Publisher.PasswordHash, "password-hash", "", "bcrypt hash of the transmitted password")
	fs.StringVar(&cfg.Publisher.Instance, "instance", "", "mDNS instance name")
	fs.StringVar(&cfg.Discovery.ServiceType, "service-type", "", "mDNS service type")

	return cfg
}

func bindCommonFlags(fs *pflag.FlagSet, cfg *StructuredConfig) {
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Log file path")
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost".
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be within 1..65535")
	}

	if host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
