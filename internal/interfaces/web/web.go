// Package web serves the embedded single-page front end.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adagency-io/adagency/internal/shared/constants"
)

//go:embed assets
var assets embed.FS

const (
	indexFile  = "index.html"
	staticPath = "/static"
)

// Assets returns the front-end files rooted at the assets directory.
func Assets() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(fmt.Sprintf("embedded assets missing: %v", err))
	}
	return sub
}

// Register mounts the index page at / and the asset tree at /static.
func Register(engine *gin.Engine) error {
	files := Assets()

	index, err := fs.ReadFile(files, indexFile)
	if err != nil {
		return fmt.Errorf("failed to read embedded index: %w", err)
	}

	engine.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, constants.ContentTypeHTML, index)
	})
	engine.StaticFS(staticPath, http.FS(files))

	return nil
}
