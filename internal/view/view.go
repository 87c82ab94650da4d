// Package view wires the embedded HTML pages into Fiber's html template engine.
package view

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

// Template names as passed to fiber.Ctx.Render.
const (
	NumberTemplate          = "5-number"
	NumberOddOrEvenTemplate = "6-number_odd_or_even"
)

//go:embed templates/*.html
var templatesFS embed.FS

// New returns an engine over the embedded page templates.
func New() *html.Engine {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic("view: embedded templates missing: " + err.Error())
	}
	return NewFromFS(sub)
}

// NewFromFS returns an engine reading *.html files from fsys. A template is
// addressed by its path without the extension.
func NewFromFS(fsys fs.FS) *html.Engine {
	return html.NewFileSystem(http.FS(fsys), ".html")
}
