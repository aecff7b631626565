// Package server wires and runs the bundle publisher.
//
// It runs the HTTP transport and, when an instance name is configured, the
// mDNS announcement as one group of workers, and shuts both down gracefully
// on SIGINT, SIGTERM or SIGQUIT.
package server
