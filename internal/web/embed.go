package web

import (
	"embed"
	"io/fs"
	"net/http"
)

var (
	//go:embed static
	embeddedStaticFiles embed.FS

	//go:embed templates
	embeddedTemplates embed.FS
)

// subFS serves the embedded tree below dir.
func subFS(fsys embed.FS, dir string) http.FileSystem {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		// dir is one of the embedded roots above
		panic(err)
	}

	return http.FS(sub)
}
