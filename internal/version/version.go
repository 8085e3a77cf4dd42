package version

import "runtime/debug"

// These variables can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/idilsaglam/settings/internal/version.Version=v0.1.0 \
//	                   -X github.com/idilsaglam/settings/internal/version.Commit=abc123"
var (
	Version = ""
	Commit  = ""
)

func init() {
	if Version == "" || Commit == "" {
		populateFromBuildInfo()
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

func populateFromBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && Commit == "" && len(s.Value) >= 7 {
			Commit = s.Value[:7]
		}
	}
}
