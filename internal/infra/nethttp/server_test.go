package nethttp_test

import (
	"context"
	"net"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/bool64/httpmock"
	"github.com/mrth1995/go-mockva/internal/infra"
	"github.com/mrth1995/go-mockva/internal/infra/nethttp"
	"github.com/mrth1995/go-mockva/internal/infra/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	ctx := context.Background()

	l, err := infra.NewServiceLocator(ctx, service.Config{
		DBPath:   filepath.Join(t.TempDir(), "mockva.db"),
		LogLevel: "error",
	})
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := nethttp.NewServer(l)
	served := make(chan error, 1)

	go func() {
		served <- srv.Serve(ln)
	}()

	rc := httpmock.NewClient("http://" + ln.Addr().String())

	rc.WithMethod(http.MethodPost).WithURI("/mockva/accounts").
		WithContentType("application/json").
		WithBody([]byte(`{"id":"a1","name":"Jane","birthDate":"1990-12-31"}`))
	require.NoError(t, rc.ExpectResponseStatus(http.StatusCreated))

	rc.Reset().WithMethod(http.MethodGet).WithURI("/mockva/apidocs/")
	require.NoError(t, rc.ExpectResponseStatus(http.StatusOK))

	drained := make(chan error, 1)

	go func() {
		drained <- l.WaitToShutdownFastHTTP(srv, "http")
	}()

	l.Close()

	require.NoError(t, <-drained)
	require.NoError(t, <-served)

	// Database outlives HTTP drain and is closed by Wait.
	_, err = l.AccountFinder().FindByID(ctx, "a1")
	require.NoError(t, err)

	require.NoError(t, l.Wait())

	_, err = l.AccountFinder().FindByID(ctx, "a1")
	assert.ErrorContains(t, err, "database is closed")
}
