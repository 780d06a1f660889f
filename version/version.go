package version

import "runtime/debug"

// Version is the SDK release version, set at build time via -ldflags.
// It falls back to the module version recorded in build info when the
// SDK is consumed as a dependency.
var Version = "dev"

// String returns the effective SDK version.
func String() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range info.Deps {
			if dep.Path == "github.com/relaypush/relay-go" {
				return dep.Version
			}
		}
	}
	return Version
}

// UserAgent returns the User-Agent value the transport sends.
func UserAgent() string {
	return "relay-go/" + String()
}
