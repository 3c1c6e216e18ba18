package apidocs_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/mrth1995/go-mockva/internal/apidocs"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(h http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	rw := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, http.NoBody)

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	h.ServeHTTP(rw, req)

	return rw
}

func TestNewHandler(t *testing.T) {
	logger, hook := test.NewNullLogger()

	h, err := apidocs.NewHandler(context.Background(), apidocs.Options{Title: "Mockva API"},
		apidocs.ScriptBundle(), logger)
	require.NoError(t, err)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Equal(t, "api docs viewer bootstrapped", hook.LastEntry().Message)
	assert.Equal(t, "/mockva/apidocs/api.json", hook.LastEntry().Data["spec_url"])

	for _, p := range []string{"/mockva/apidocs", "/mockva/apidocs/", "/mockva/apidocs/index.html"} {
		rw := serve(h, http.MethodGet, p, nil)

		assert.Equal(t, http.StatusOK, rw.Code, p)
		assert.Equal(t, "text/html; charset=utf-8", rw.Header().Get("Content-Type"))
		assert.Contains(t, rw.Body.String(), `<title>Mockva API</title>`)
		assert.Contains(t, rw.Body.String(), `<div id="swagger-ui"></div>`)
		assert.Contains(t, rw.Body.String(), `<script src="/mockva/apidocs/swagger-initializer.js" charset="UTF-8"></script>`)
	}

	script, ok := h.Page().UI().(*apidocs.Script)
	require.True(t, ok)

	rw := serve(h, http.MethodGet, "/mockva/apidocs/swagger-initializer.js", nil)
	assert.Equal(t, http.StatusOK, rw.Code)
	assert.Equal(t, "application/javascript; charset=utf-8", rw.Header().Get("Content-Type"))
	assert.Equal(t, script.ETag, rw.Header().Get("ETag"))
	assert.Equal(t, string(script.Source), rw.Body.String())

	rw = serve(h, http.MethodGet, "/mockva/apidocs/swagger-initializer.js",
		map[string]string{"If-None-Match": script.ETag})
	assert.Equal(t, http.StatusNotModified, rw.Code)
	assert.Empty(t, rw.Body.String())
}

func TestNewHandler_embeddedAssets(t *testing.T) {
	logger, _ := test.NewNullLogger()

	h, err := apidocs.NewHandler(context.Background(), apidocs.Options{Title: "Mockva API"},
		apidocs.ScriptBundle(), logger)
	require.NoError(t, err)

	rw := serve(h, http.MethodGet, "/mockva/apidocs/swagger-ui-bundle.js",
		map[string]string{"Accept-Encoding": "gzip"})
	assert.Equal(t, http.StatusOK, rw.Code)
	assert.Equal(t, "gzip", rw.Header().Get("Content-Encoding"))
	assert.NotEmpty(t, rw.Body.Bytes())

	rw = serve(h, http.MethodGet, "/mockva/apidocs/swagger-ui-bundle.js", nil)
	assert.Equal(t, http.StatusOK, rw.Code)
	assert.Empty(t, rw.Header().Get("Content-Encoding"))
	assert.Contains(t, rw.Body.String(), "SwaggerUIBundle")

	rw = serve(h, http.MethodGet, "/mockva/apidocs/swagger-ui.css", nil)
	assert.Equal(t, http.StatusOK, rw.Code)
	assert.NotEmpty(t, rw.Body.Bytes())

	rw = serve(h, http.MethodGet, "/mockva/apidocs/missing.js", nil)
	assert.Equal(t, http.StatusNotFound, rw.Code)
}

func TestNewHandler_dir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "swagger-ui-bundle.js"), []byte("/* bundle */"), 0o600))

	logger, _ := test.NewNullLogger()

	h, err := apidocs.NewHandler(context.Background(), apidocs.Options{Title: "Mockva API", Dir: dir},
		apidocs.ScriptBundle(), logger)
	require.NoError(t, err)

	rw := serve(h, http.MethodGet, "/mockva/apidocs/swagger-ui-bundle.js", nil)
	assert.Equal(t, http.StatusOK, rw.Code)
	assert.Equal(t, "/* bundle */", rw.Body.String())

	rw = serve(h, http.MethodGet, "/mockva/apidocs/missing.js", nil)
	assert.Equal(t, http.StatusNotFound, rw.Code)

	// Generated initializer takes precedence over the one from distribution.
	rw = serve(h, http.MethodGet, "/mockva/apidocs/swagger-initializer.js", nil)
	assert.Equal(t, http.StatusOK, rw.Code)
	assert.Contains(t, rw.Body.String(), "SwaggerUIStandalonePreset.slice(1)")
}

func TestNewHandler_bootstrapFailure(t *testing.T) {
	logger, hook := test.NewNullLogger()

	b := apidocs.ScriptBundle()
	b.Construct = nil

	_, err := apidocs.NewHandler(context.Background(), apidocs.Options{}, b, logger)
	assert.ErrorIs(t, err, apidocs.ErrNoConstructor)
	assert.Nil(t, hook.LastEntry())
}

func TestNewHandler_unexpectedHandle(t *testing.T) {
	logger, _ := test.NewNullLogger()

	b := apidocs.ScriptBundle()
	b.Construct = func(cfg apidocs.Config) (apidocs.Handle, error) {
		return "not a script", nil
	}

	_, err := apidocs.NewHandler(context.Background(), apidocs.Options{}, b, logger)
	assert.ErrorIs(t, err, apidocs.ErrUnexpectedHandle)
}
