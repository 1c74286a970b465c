// The //go:embed directive only reaches files below the declaring package,
// so the data directory is embedded from the module root.
package main

import "embed"

//go:embed data/dashboard.yaml
var dataFS embed.FS
