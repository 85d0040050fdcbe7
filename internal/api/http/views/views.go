// Package views holds the HTML templates for the notification pages.
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html
var files embed.FS

// Engine returns a template engine over the embedded templates. Templates
// are addressed by file name without the extension, e.g. "list".
func Engine() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}
