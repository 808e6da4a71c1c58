package httpserver

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	pkgErrors "mcal/pkg/errors"
	"mcal/pkg/response"
)

const (
	indexFile   = "index.html"
	faviconFile = "favicon.png"
)

var errFileNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "file not found")

// serveStatic serves the web frontend for every unmatched GET. Paths without
// an extension in their last segment fall back to index.html.
func (srv HTTPServer) serveStatic(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		response.Error(c, errFileNotFound)
		return
	}

	path, ok := resolveStatic(srv.staticDir, c.Request.URL.Path)
	if !ok {
		response.Forbidden(c)
		return
	}
	if isFile(path) {
		c.File(path)
		return
	}

	last := c.Request.URL.Path[strings.LastIndex(c.Request.URL.Path, "/")+1:]
	if !strings.Contains(last, ".") {
		if index := filepath.Join(srv.staticDir, indexFile); isFile(index) {
			c.File(index)
			return
		}
	}

	response.Error(c, errFileNotFound)
}

// resolveStatic maps a request path into dir. ok is false when the result
// would leave dir.
func resolveStatic(dir, urlPath string) (string, bool) {
	rel := strings.TrimPrefix(urlPath, "/")
	switch rel {
	case "":
		rel = indexFile
	case "favicon.ico":
		rel = faviconFile
	}

	root := filepath.Clean(dir)
	full := filepath.Join(root, filepath.FromSlash(rel))
	if full != root && !strings.HasPrefix(full, root+string(filepath.Separator)) {
		return "", false
	}
	return full, true
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
