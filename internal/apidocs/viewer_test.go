package apidocs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mrth1995/go-mockva/internal/apidocs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLibrary struct {
	calls    int
	recorded apidocs.Config
}

func (l *recordingLibrary) bundle() apidocs.Bundle {
	return apidocs.Bundle{
		Construct: func(cfg apidocs.Config) (apidocs.Handle, error) {
			l.calls++
			l.recorded = cfg

			return "viewer", nil
		},
		APIsPreset:        "A",
		StandalonePreset:  apidocs.Sequence{"X", "B", "C"},
		DownloadURLPlugin: "D",
	}
}

func TestInstall(t *testing.T) {
	lib := &recordingLibrary{}
	page := apidocs.NewPage()

	require.NoError(t, apidocs.Install(page, lib.bundle()))
	assert.Equal(t, 0, lib.calls)
	assert.Nil(t, page.UI())

	require.NoError(t, page.Load(context.Background()))
	require.NoError(t, page.Load(context.Background()))

	assert.Equal(t, 1, lib.calls)
	assert.Equal(t, apidocs.Config{
		URL:         "/mockva/apidocs/api.json",
		DomID:       "#swagger-ui",
		DeepLinking: true,
		Presets:     []apidocs.Ref{"A", apidocs.Sequence{"B", "C"}},
		Plugins:     []apidocs.Ref{"D"},
		Layout:      "StandaloneLayout",
	}, lib.recorded)

	h, found := page.Lookup("ui")
	assert.True(t, found)
	assert.Equal(t, "viewer", h)
	assert.Equal(t, "viewer", page.UI())
}

func TestInstall_afterLoad(t *testing.T) {
	lib := &recordingLibrary{}
	page := apidocs.NewPage()

	require.NoError(t, page.Load(context.Background()))

	err := apidocs.Install(page, lib.bundle())
	assert.ErrorIs(t, err, apidocs.ErrPageAlreadyLoaded)
	assert.Equal(t, 0, lib.calls)
}

func TestBootstrap_noConstructor(t *testing.T) {
	lib := &recordingLibrary{}
	b := lib.bundle()
	b.Construct = nil

	page := apidocs.NewPage()
	require.NoError(t, apidocs.Install(page, b))

	err := page.Load(context.Background())
	assert.ErrorIs(t, err, apidocs.ErrNoConstructor)
	assert.Nil(t, page.UI())

	// Load outcome is sticky.
	assert.ErrorIs(t, page.Load(context.Background()), apidocs.ErrNoConstructor)
}

func TestBootstrap_constructorFails(t *testing.T) {
	failure := errors.New("mount point not found")
	b := apidocs.Bundle{
		Construct: func(cfg apidocs.Config) (apidocs.Handle, error) {
			return nil, failure
		},
		StandalonePreset: apidocs.Sequence{},
	}

	page := apidocs.NewPage()

	err := apidocs.Bootstrap(page, b)
	assert.ErrorIs(t, err, failure)
	assert.Nil(t, page.UI())
}

func TestBootstrap_reassign(t *testing.T) {
	lib := &recordingLibrary{}
	page := apidocs.NewPage()

	require.NoError(t, apidocs.Bootstrap(page, lib.bundle()))

	err := apidocs.Bootstrap(page, lib.bundle())
	assert.ErrorIs(t, err, apidocs.ErrAlreadyAssigned)
	assert.Equal(t, "viewer", page.UI())
}

func TestNewConfig_missingStandalonePreset(t *testing.T) {
	_, err := apidocs.NewConfig(apidocs.Bundle{APIsPreset: "A"})
	assert.ErrorIs(t, err, apidocs.ErrMissingCapability)
}

func TestSequence_SliceFrom(t *testing.T) {
	preset := apidocs.Sequence{"X", "B", "C"}

	tail := preset.SliceFrom(1)
	assert.Equal(t, apidocs.Sequence{"B", "C"}, tail)
	assert.Len(t, tail, len(preset)-1)

	// Source preset is not affected.
	tail.(apidocs.Sequence)[0] = "Z"
	assert.Equal(t, apidocs.Sequence{"X", "B", "C"}, preset)

	assert.Equal(t, apidocs.Sequence{}, apidocs.Sequence{}.SliceFrom(1))
	assert.Equal(t, apidocs.Sequence{"X", "B", "C"}, preset.SliceFrom(-1))
}

func TestExpr_SliceFrom(t *testing.T) {
	assert.Equal(t, apidocs.Expr("SwaggerUIStandalonePreset.slice(1)"),
		apidocs.Expr("SwaggerUIStandalonePreset").SliceFrom(1))
	assert.Equal(t, apidocs.Expr("SwaggerUIStandalonePreset.slice(0)"),
		apidocs.Expr("SwaggerUIStandalonePreset").SliceFrom(-1))
}
