package handler_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/filmstudio/internal/handler"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestSiteHandler(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.html"), "<html>studio</html>")
	writeFile(t, filepath.Join(dir, "assets", "app.js"), "console.log('hero')")

	h, err := handler.NewSiteHandler(dir, testLogger())
	require.NoError(t, err)

	tests := []struct {
		name     string
		path     string
		wantBody string
	}{
		{name: "root", path: "/", wantBody: "<html>studio</html>"},
		{name: "asset", path: "/assets/app.js", wantBody: "console.log('hero')"},
		{name: "client route falls back", path: "/work/retro-revival", wantBody: "<html>studio</html>"},
		{name: "directory falls back", path: "/assets", wantBody: "<html>studio</html>"},
		{name: "traversal stays inside root", path: "/../../etc/passwd", wantBody: "<html>studio</html>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestNewSiteHandler_MissingBuild(t *testing.T) {
	_, err := handler.NewSiteHandler(t.TempDir(), testLogger())
	assert.ErrorIs(t, err, handler.ErrNoFrontend)
}
