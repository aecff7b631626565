// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IPv4 with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "IPv6 with port", addr: NetAddress{Host: "fe80::1", Port: 6971}, expected: "[fe80::1]:6971"},
		{name: "only port no host", addr: NetAddress{Host: "", Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "192.168.0.10:6971", expectedAddr: NetAddress{Host: "192.168.0.10", Port: 6971}},
		{name: "valid IPv6", input: "[fe80::1]:6971", expectedAddr: NetAddress{Host: "fe80::1", Port: 6971}},
		{name: "missing colon", input: "localhost8080", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "hostname not allowed", input: "pos-server:6971", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestNetAddress_IsPflagValue(t *testing.T) {
	var _ pflag.Value = &NetAddress{}
	assert.Equal(t, "host:port", (&NetAddress{}).Type())
}

func TestBindClientFlags_ParsesValues(t *testing.T) {
	fs := pflag.NewFlagSet("client", pflag.ContinueOnError)
	cfg := BindClientFlags(fs)

	err := fs.Parse([]string{
		"-c", "/etc/pos.json",
		"--app-dir", "/opt/pos",
		"--bundles", "a.egg,b.egg",
		"--executable-bundle", "b.egg",
		"--password-scheme", "plain",
		"--request-timeout", "15s",
		"--backup-script", "/opt/backup.py",
	})
	require.NoError(t, err)

	assert.Equal(t, "/etc/pos.json", cfg.JSONFilePath)
	assert.Equal(t, "/opt/pos", cfg.Sync.AppDir)
	assert.Equal(t, []string{"a.egg", "b.egg"}, cfg.Sync.Bundles)
	assert.Equal(t, "b.egg", cfg.Sync.ExecutableBundle)
	assert.Equal(t, "plain", cfg.Sync.PasswordScheme)
	assert.Equal(t, 15*time.Second, cfg.Sync.RequestTimeout)
	assert.Equal(t, "/opt/backup.py", cfg.Backup.Script)
}

func TestBindClientFlags_UnsetFlagsStayZero(t *testing.T) {
	fs := pflag.NewFlagSet("client", pflag.ContinueOnError)
	cfg := BindClientFlags(fs)

	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBindPublisherFlags_ParsesValues(t *testing.T) {
	fs := pflag.NewFlagSet("publisher", pflag.ContinueOnError)
	cfg := BindPublisherFlags(fs)

	err := fs.Parse([]string{
		"-a", "0.0.0.0:6971",
		"-d", "/srv/eggs",
		"--username", "admin",
		"--password-hash", "$2a$10$abc",
		"--instance", "store-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:6971", cfg.Publisher.Address)
	assert.Equal(t, "/srv/eggs", cfg.Publisher.BundleDir)
	assert.Equal(t, "admin", cfg.Publisher.Username)
	assert.Equal(t, "$2a$10$abc", cfg.Publisher.PasswordHash)
	assert.Equal(t, "store-1", cfg.Publisher.Instance)
}
