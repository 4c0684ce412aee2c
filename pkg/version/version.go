// Package version exposes build-time version information for empdash.
package version

import "runtime/debug"

// version is overridden at build time via -ldflags "-X github.com/rshade/empdash/pkg/version.version=v1.2.3".
var version = "" //nolint:gochecknoglobals // Set by the linker.

const develVersion = "v0.0.0-dev"

// GetVersion returns the linker-injected version, falling back to the module
// version recorded in the build info and finally to a development marker.
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return develVersion
}
