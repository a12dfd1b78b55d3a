// Package view renders the dashboard session as HTML.
package view

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"io/fs"

	"go.uber.org/zap"
)

// Template keys.
const (
	KeyPage          = "page"
	KeyPanel         = "panel"
	KeyInventoryRows = "inventory-rows"
	KeyToasts        = "toasts"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the embedded stylesheet and script, rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

type Renderer struct {
	tmpl *template.Template
	log  *zap.Logger
}

// NewRenderer parses the embedded templates.
func NewRenderer(log *zap.Logger) (*Renderer, error) {
	tmpl, err := template.New("opsboard").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl, log: log}, nil
}

// Has reports whether key names a template.
func (r *Renderer) Has(key string) bool {
	return r.tmpl.Lookup(key) != nil
}

// Render executes the template named key into w. A key with no template
// renders nothing. Output is buffered so a failed execution writes nothing.
func (r *Renderer) Render(w io.Writer, key string, data any) error {
	t := r.tmpl.Lookup(key)
	if t == nil {
		r.log.Debug("no template for key", zap.String("key", key))
		return nil
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
