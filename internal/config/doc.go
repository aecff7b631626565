// Package config provides configuration loading, merging, and validation
// facilities for the sync client, the backup proxy and the bundle publisher.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Defaults are applied last to whatever is still empty. The entry points are
// [GetClientConfig], [GetBackupConfig] and [GetPublisherConfig], each
// returning a validated role-specific view.
package config
