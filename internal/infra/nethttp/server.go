package nethttp

import (
	"time"

	"github.com/mrth1995/go-mockva/internal/apidocs"
	"github.com/mrth1995/go-mockva/internal/infra/service"
	"github.com/swaggest/fchi"
	"github.com/valyala/fasthttp"
)

// NewHandler creates fasthttp handler that serves API router and Swagger UI.
func NewHandler(l *service.Locator) fchi.Handler {
	api := fchi.Adapt(NewRouter(l))

	r := fchi.NewRouter()

	// Schema belongs to API router, the rest of /mockva/apidocs is served by viewer.
	r.Handle(apidocs.SpecURL, api)
	r.Mount(apidocs.BasePath, fchi.Adapt(l.Docs))
	r.Handle("/*", api)

	return r
}

// NewServer creates fasthttp server for the service.
func NewServer(l *service.Locator) *fasthttp.Server {
	return &fasthttp.Server{
		ReadTimeout: 9 * time.Second,
		IdleTimeout: 9 * time.Second,
		Handler:     fchi.RequestHandler(NewHandler(l)),
	}
}
