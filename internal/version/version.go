// Package version exposes build metadata injected at link time.
package version

import (
	"fmt"
	"runtime"
)

// Set via -ldflags at release build time.
var (
	Version = "0.1.0-dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the bare version string.
func Short() string {
	return Version
}

// Info returns a one-line description for version output.
func Info() string {
	return fmt.Sprintf("nettriage %s (commit %s, built %s, %s/%s)",
		Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}
