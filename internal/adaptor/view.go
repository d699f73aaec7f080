package adaptor

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
)

//go:embed views/*.html
var viewFiles embed.FS

var views = template.Must(template.ParseFS(viewFiles, "views/*.html"))

// render executes into a buffer first so a template error never leaves a
// half written page behind.
func render(w http.ResponseWriter, name string, data any) error {
	var buf bytes.Buffer
	if err := views.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err := buf.WriteTo(w)
	return err
}
