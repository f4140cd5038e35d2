package relwatch

import "runtime/debug"

// currentVersionFromBuildInfo resolves the host application's version from
// the main module's build metadata. Returns "" for dev builds and binaries
// built outside module mode, which the checker treats as unavailable.
func currentVersionFromBuildInfo() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	v := info.Main.Version
	if v == "(devel)" || v == "" {
		return ""
	}

	return v
}
