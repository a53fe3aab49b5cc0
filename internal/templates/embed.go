package templates

import (
	"embed"
	"io/fs"
)

//go:embed bundle/*.rs
var bundleFS embed.FS

// bundleDir is the directory of the compiled-in templates inside bundleFS.
const bundleDir = "bundle"

// Bundle returns the compiled-in template files. The result is read-only;
// callers pass it to NewBundleSource.
func Bundle() fs.FS {
	sub, err := fs.Sub(bundleFS, bundleDir)
	if err != nil {
		// bundleDir is a compile-time constant matching the embed directive.
		panic(err)
	}
	return sub
}
