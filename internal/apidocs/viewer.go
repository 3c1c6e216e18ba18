// Package apidocs hosts the Swagger UI viewer that documents mockva API.
package apidocs

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// Viewer settings.
const (
	BasePath   = "/mockva/apidocs"
	SpecURL    = BasePath + "/api.json"
	MountPoint = "#swagger-ui"
	Layout     = "StandaloneLayout"

	// HandleName is a page-wide name of the mounted viewer handle.
	HandleName = "ui"
)

// Errors.
var (
	ErrNoConstructor     = errors.New("rendering library has no construction function")
	ErrMissingCapability = errors.New("rendering library misses capability")
	ErrUnexpectedHandle  = errors.New("unexpected viewer handle")
	ErrAlreadyAssigned   = errors.New("page slot is already assigned")
	ErrPageAlreadyLoaded = errors.New("page is already loaded")
)

// Ref is an opaque capability provider exported by rendering library, e.g. a preset or a plugin.
type Ref interface{}

// Handle is an opaque reference to a mounted viewer.
type Handle interface{}

// Slicer is a preset that can drop its leading elements.
type Slicer interface {
	SliceFrom(i int) Ref
}

// Sequence is a preset made of a list of capabilities.
type Sequence []Ref

// SliceFrom returns a copy of sequence without i leading elements.
func (s Sequence) SliceFrom(i int) Ref {
	if i < 0 {
		i = 0
	}

	if i > len(s) {
		i = len(s)
	}

	res := make(Sequence, len(s)-i)
	copy(res, s[i:])

	return res
}

// Expr is a JavaScript expression that resolves to a capability in browser.
type Expr string

// SliceFrom implements Slicer, negative index is treated as 0.
func (e Expr) SliceFrom(i int) Ref {
	if i < 0 {
		i = 0
	}

	return Expr(string(e) + ".slice(" + strconv.Itoa(i) + ")")
}

// Config is a viewer configuration handed to rendering library.
type Config struct {
	URL         string `json:"url"`
	DomID       string `json:"dom_id"`
	DeepLinking bool   `json:"deepLinking"`
	Presets     []Ref  `json:"presets"`
	Plugins     []Ref  `json:"plugins"`
	Layout      string `json:"layout"`
}

type setting struct {
	key   string
	value interface{}
}

// settings lists configuration in the order of rendering.
func (c Config) settings() []setting {
	return []setting{
		{key: "url", value: c.URL},
		{key: "dom_id", value: c.DomID},
		{key: "deepLinking", value: c.DeepLinking},
		{key: "presets", value: c.Presets},
		{key: "plugins", value: c.Plugins},
		{key: "layout", value: c.Layout},
	}
}

// Bundle describes a loaded rendering library.
type Bundle struct {
	// Construct mounts a viewer and returns its handle.
	Construct func(cfg Config) (Handle, error)

	APIsPreset        Ref
	StandalonePreset  Slicer
	DownloadURLPlugin Ref
}

// NewConfig builds viewer configuration from library capabilities.
//
// Standalone preset is used without its first element to suppress the top bar.
func NewConfig(b Bundle) (Config, error) {
	if b.StandalonePreset == nil {
		return Config{}, fmt.Errorf("%w: standalone preset", ErrMissingCapability)
	}

	return Config{
		URL:         SpecURL,
		DomID:       MountPoint,
		DeepLinking: true,
		Presets: []Ref{
			b.APIsPreset,
			b.StandalonePreset.SliceFrom(1),
		},
		Plugins: []Ref{
			b.DownloadURLPlugin,
		},
		Layout: Layout,
	}, nil
}

// Bootstrap constructs a viewer with library and assigns its handle to the page.
func Bootstrap(p *Page, b Bundle) error {
	if b.Construct == nil {
		return ErrNoConstructor
	}

	cfg, err := NewConfig(b)
	if err != nil {
		return err
	}

	h, err := b.Construct(cfg)
	if err != nil {
		return fmt.Errorf("construct viewer: %w", err)
	}

	return p.Assign(HandleName, h)
}

// Install registers viewer bootstrap to run once page is loaded.
func Install(p *Page, b Bundle) error {
	return p.OnLoad(func(_ context.Context) error {
		return Bootstrap(p, b)
	})
}
