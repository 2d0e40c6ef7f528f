// Package web provides embedded static assets for the editor overlay.
// Rendered pages are self-contained; these files are only loaded by the
// editing surface that drives previews.
package web

import (
	"embed"
	"io/fs"
)

//go:embed all:static
var staticFS embed.FS

// Static returns the embedded asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
