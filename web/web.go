// Package web embeds the HTML views and static assets served by the app.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed views static
var files embed.FS

// Views returns a template engine over the embedded views.
func Views() *html.Engine {
	sub, err := fs.Sub(files, "views")
	if err != nil {
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}

// Static returns the embedded static assets.
func Static() http.FileSystem {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
