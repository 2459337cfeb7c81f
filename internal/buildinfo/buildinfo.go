package buildinfo

import "runtime/debug"

// Set at link time with -ldflags "-X".
var (
	version = "dev"
	commit  = ""
)

// SetVersion allows build scripts to override the version information.
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
}

// Version returns the semantic version associated with the build, falling
// back to the module version recorded by the Go toolchain.
func Version() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

// Commit returns the VCS revision the binary was built from, shortened to
// twelve characters, or an empty string when unknown.
func Commit() string {
	rev := commit
	if rev == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" {
					rev = s.Value
					break
				}
			}
		}
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	return rev
}
