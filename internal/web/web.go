package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var content embed.FS

// Static returns the browser front-end files rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// IndexHandler serves the front-end page.
func IndexHandler() http.HandlerFunc {
	static := Static()
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, static, "index.html")
	}
}

// AssetsHandler serves the page's scripts and styles under prefix.
func AssetsHandler(prefix string) http.Handler {
	return http.StripPrefix(prefix, http.FileServerFS(Static()))
}
