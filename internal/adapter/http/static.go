package http

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed web/*
var webFS embed.FS

// staticFS is webFS rooted at web/; the embed directive guarantees the
// directory exists, so a failure here is a build defect and panics at init.
var staticFS = func() fs.FS {
	sub, err := fs.Sub(webFS, "web")
	if err != nil {
		panic(err)
	}
	return sub
}()

func (h *Handler) serveStatic(r chi.Router) {
	r.Handle("/*", http.FileServer(http.FS(staticFS)))
}
