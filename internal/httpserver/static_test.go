package httpserver

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newStaticRouter(t *testing.T) *gin.Engine {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"index.html":      "<html>index</html>",
		"favicon.png":     "png",
		"js/app.js":       "console.log(1)",
		"docs/readme.txt": "hello",
	}
	for name, body := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	srv := HTTPServer{staticDir: dir}
	r.NoRoute(srv.serveStatic)
	return r
}

func TestServeStatic(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "root serves index", path: "/", wantStatus: http.StatusOK, wantBody: "index"},
		{name: "existing file", path: "/js/app.js", wantStatus: http.StatusOK, wantBody: "console.log"},
		{name: "favicon alias", path: "/favicon.ico", wantStatus: http.StatusOK, wantBody: "png"},
		{name: "spa route", path: "/calendar/week", wantStatus: http.StatusOK, wantBody: "index"},
		{name: "directory falls back to index", path: "/docs", wantStatus: http.StatusOK, wantBody: "index"},
		{name: "missing asset", path: "/js/missing.js", wantStatus: http.StatusNotFound},
		{name: "traversal", path: "/../secret", wantStatus: http.StatusForbidden},
		{name: "non-get", method: http.MethodPost, path: "/nothing", wantStatus: http.StatusNotFound},
	}

	r := newStaticRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(method, tt.path, nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("body = %q, want it to contain %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestResolveStatic(t *testing.T) {
	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{path: "/", want: filepath.Join("web", "index.html"), wantOK: true},
		{path: "/a/b.css", want: filepath.Join("web", "a", "b.css"), wantOK: true},
		{path: "/a/../b.css", want: filepath.Join("web", "b.css"), wantOK: true},
		{path: "/../web2/x", wantOK: false},
		{path: "/../../etc/passwd", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := resolveStatic("web", tt.path)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("resolveStatic(%q) = %q, %v; want %q, %v", tt.path, got, ok, tt.want, tt.wantOK)
		}
	}
}
