// Package web bundles the server-rendered HTML templates into the binary.
package web

import (
	"embed"
)

//go:embed templates/*.html
var Templates embed.FS
