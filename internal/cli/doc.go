// Package cli defines the stoq-client command tree.
//
// Configuration flags are registered once on the root command and shared
// by every subcommand; the merged configuration is loaded when a command
// runs.
package cli
