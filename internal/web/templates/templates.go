// Package templates holds the HTML screens of the front end.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Parse loads every page. Pages share the "header" and "footer" blocks from
// layout.html and are looked up by file name.
func Parse() (*template.Template, error) {
	return template.New("").ParseFS(files, "*.html")
}
