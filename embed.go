// embed.go - embedded data declarations.
// Lives at the repository root next to data/ because //go:embed only sees
// the package directory and below.
package main

import "embed"

//go:embed data
var dataFS embed.FS
