package buildinfo

import (
	"runtime/debug"
)

var BuildInfo *debug.BuildInfo

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		info = &debug.BuildInfo{}
	}
	BuildInfo = info
}

// Version returns the main module version or "(devel)" for local builds.
func Version() string {
	if v := BuildInfo.Main.Version; v != "" {
		return v
	}
	return "(devel)"
}
