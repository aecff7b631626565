// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net"
	"strconv"
)

// ServerKey identifies an announced bundle server on the local segment.
type ServerKey struct {
	Address string
	Port    int
}

// HostPort returns the key in "host:port" form, bracketing IPv6 literals.
func (k ServerKey) HostPort() string {
	return net.JoinHostPort(k.Address, strconv.Itoa(k.Port))
}

func (k ServerKey) String() string {
	return k.HostPort()
}

// ServerAnnouncement is a transient discovery record. It lives in the
// registry from the first announce until the matching withdraw.
type ServerAnnouncement struct {
	Key ServerKey

	// Instance and HostName are informational; they come from the mDNS
	// service record and are not part of the key.
	Instance string
	HostName string

	// Properties are the free-form TXT key/value pairs published by the server.
	Properties map[string]string
}

// WithProperties returns a copy of a whose property map is not shared with
// the receiver.
func (a ServerAnnouncement) WithProperties(props map[string]string) ServerAnnouncement {
	cp := make(map[string]string, len(props))
	for k, v := range props {
		cp[k] = v
	}
	a.Properties = cp
	return a
}
