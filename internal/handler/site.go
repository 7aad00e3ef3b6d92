// Package handler contains HTTP request handlers for the studio site.
//
// HANDLER RESPONSIBILITIES:
// 1. Parse the incoming HTTP request (body, URL params, headers)
// 2. Call the service layer
// 3. Write the HTTP response (status code, headers, body)
//
// Handlers should NOT contain business logic — they are the glue between HTTP
// and the services.
package handler

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrNoFrontend is returned by NewSiteHandler when the static directory has
// no index.html, which usually means the front-end was never built.
var ErrNoFrontend = errors.New("front-end build not found")

// SiteHandler serves the built single-page front-end.
//
// Real files (bundles, images, fonts) are served as-is. Any other path falls
// back to index.html so client-side routes survive a page refresh.
type SiteHandler struct {
	root   string
	files  http.Handler
	logger *slog.Logger
}

// NewSiteHandler checks that staticDir contains an index.html and prepares a
// file server rooted there.
func NewSiteHandler(staticDir string, logger *slog.Logger) (*SiteHandler, error) {
	index := filepath.Join(staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		return nil, errors.Join(ErrNoFrontend, err)
	}

	return &SiteHandler{
		root:   staticDir,
		files:  http.FileServer(http.Dir(staticDir)),
		logger: logger,
	}, nil
}

// ServeHTTP serves a static file, or index.html when no file matches.
func (h *SiteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	clean := path.Clean("/" + r.URL.Path)
	if clean != "/" {
		info, err := fs.Stat(os.DirFS(h.root), strings.TrimPrefix(clean, "/"))
		if err == nil && !info.IsDir() {
			h.files.ServeHTTP(w, r)
			return
		}
	}

	h.serveIndex(w, r)
}

// serveIndex writes index.html directly. http.ServeFile is avoided because it
// rejects any request path containing "..", and those should get the app too.
func (h *SiteHandler) serveIndex(w http.ResponseWriter, r *http.Request) {
	f, err := os.Open(filepath.Join(h.root, "index.html"))
	if err != nil {
		h.logger.Error("opening index.html", slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		h.logger.Error("stat index.html", slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	http.ServeContent(w, r, "index.html", info.ModTime(), f)
}
