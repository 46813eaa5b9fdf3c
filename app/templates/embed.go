// Package templates embeds the server-rendered pages.
package templates

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html
var files embed.FS

// NewEngine returns the template engine serving the embedded pages.
func NewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}
