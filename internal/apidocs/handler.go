package apidocs

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	swgui "github.com/swaggest/swgui/v5emb"
)

// Options configures documentation handler.
type Options struct {
	Title string

	// Dir is a directory with Swagger UI distribution, embedded assets are used if empty.
	Dir string
}

// Handler serves the page that hosts viewer, its initializer and Swagger UI assets.
type Handler struct {
	page   *Page
	script *Script
	index  []byte
	assets http.Handler
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <title>{{ .Title }}</title>
    <link rel="stylesheet" type="text/css" href="{{ .BasePath }}/swagger-ui.css" />
    <link rel="icon" type="image/png" href="{{ .BasePath }}/favicon-32x32.png" sizes="32x32" />
    <style>html { box-sizing: border-box; overflow-y: scroll; } body { margin: 0; background: #fafafa; }</style>
  </head>
  <body>
    <div id="{{ .MountID }}"></div>
    <script src="{{ .BasePath }}/swagger-ui-bundle.js" charset="UTF-8"></script>
    <script src="{{ .BasePath }}/swagger-ui-standalone-preset.js" charset="UTF-8"></script>
    <script src="{{ .BasePath }}/swagger-initializer.js" charset="UTF-8"></script>
  </body>
</html>
`))

// NewHandler loads a page with viewer bootstrap installed and prepares documentation handler.
func NewHandler(ctx context.Context, opts Options, bundle Bundle, logger logrus.FieldLogger) (*Handler, error) {
	page := NewPage()

	if err := Install(page, bundle); err != nil {
		return nil, err
	}

	if err := page.Load(ctx); err != nil {
		return nil, fmt.Errorf("load api docs page: %w", err)
	}

	script, ok := page.UI().(*Script)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedHandle, page.UI())
	}

	h := &Handler{
		page:   page,
		script: script,
	}

	index := bytes.Buffer{}
	if err := indexTemplate.Execute(&index, struct {
		Title    string
		BasePath string
		MountID  string
	}{
		Title:    opts.Title,
		BasePath: BasePath,
		MountID:  strings.TrimPrefix(script.Config.DomID, "#"),
	}); err != nil {
		return nil, fmt.Errorf("render index: %w", err)
	}

	h.index = index.Bytes()

	// Index of swgui handler is shadowed by ServeHTTP, only its static files are served.
	if opts.Dir != "" {
		h.assets = http.StripPrefix(BasePath, http.FileServer(http.Dir(opts.Dir)))
	} else {
		h.assets = swgui.New(opts.Title, script.Config.URL, BasePath)
	}

	logger.WithFields(logrus.Fields{
		"spec_url": script.Config.URL,
		"etag":     script.ETag,
		"assets":   assetsSource(opts.Dir),
	}).Info("api docs viewer bootstrapped")

	return h, nil
}

func assetsSource(dir string) string {
	if dir == "" {
		return "embedded"
	}

	return dir
}

// Page returns page that hosts viewer.
func (h *Handler) Page() *Page {
	return h.page
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch strings.TrimPrefix(r.URL.Path, BasePath) {
	case "", "/", "/index.html":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		http.ServeContent(w, r, "index.html", time.Time{}, bytes.NewReader(h.index))
	case "/swagger-initializer.js":
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("ETag", h.script.ETag)
		http.ServeContent(w, r, "swagger-initializer.js", time.Time{}, bytes.NewReader(h.script.Source))
	default:
		h.assets.ServeHTTP(w, r)
	}
}
