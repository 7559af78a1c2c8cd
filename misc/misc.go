// Package misc keeps build identity helpers used across the program.
package misc

import (
	"runtime/debug"
)

const appName = "lovemedo"

// GetAppName returns program name used for logs, temp files and reports.
func GetAppName() string {
	return appName
}

// GetVersion returns module version recorded by the toolchain, "devel" when
// building from a dirty tree.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "devel"
}

// GetGitHash returns vcs revision recorded by the toolchain, if any.
func GetGitHash() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return "unknown"
}
