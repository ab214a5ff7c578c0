package version

// Version holds the current version of charswap.
// It is overridden at build time with -ldflags "-X .../internal/version.Version=..."
var Version = "1.0.0"

// VersionInfo returns a string with the current version information.
func VersionInfo() string {
	return "charswap version " + Version
}
