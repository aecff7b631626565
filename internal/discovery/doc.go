// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package discovery keeps the live list of bundle servers announced on the
// local network.
//
// [Registry] is the list itself: announcements are keyed by address and port
// and every change is pushed to the subscribed [Observer] values. [Browser]
// feeds the registry from multicast DNS service discovery and [Announcer]
// advertises a bundle publisher so that clients can find it.
package discovery
