// Package spotter only holds the version number of the Spotter CLI. The main entry-point for this repository can be
// found under `cmd/spotter`.
package spotter

// Version is the version of the Spotter CLI. The default value here is a placeholder - the correct version is
// compiled into the binary using LDFLAGS.
var Version = "unreleased"
