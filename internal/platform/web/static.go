package web

import (
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// RegisterStatic serves index at "/" and any other file under dir at its
// relative path. Paths are cleaned so that requests cannot leave dir.
func RegisterStatic(e *echo.Echo, dir, index string) {
	e.GET("/", func(c echo.Context) error {
		return serveFile(c, dir, index)
	})
	e.GET("/*", func(c echo.Context) error {
		p, err := url.PathUnescape(c.Param("*"))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid path")
		}
		return serveFile(c, dir, p)
	})
}

func serveFile(c echo.Context, dir, name string) error {
	rel := path.Clean("/" + name)
	full := filepath.Join(dir, filepath.FromSlash(rel))
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return echo.NewHTTPError(http.StatusNotFound, "File not found: "+rel[1:])
	}
	return c.File(full)
}
