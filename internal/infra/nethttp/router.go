// Package nethttp provides HTTP transport of the service.
package nethttp

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/mrth1995/go-mockva/internal/apidocs"
	"github.com/mrth1995/go-mockva/internal/infra/log"
	"github.com/mrth1995/go-mockva/internal/infra/schema"
	"github.com/mrth1995/go-mockva/internal/infra/service"
	"github.com/mrth1995/go-mockva/internal/usecase"
	"github.com/rs/cors"
	"github.com/swaggest/openapi-go/openapi3"
	"github.com/swaggest/rest/nethttp"
	"github.com/swaggest/rest/response/gzip"
	"github.com/swaggest/rest/web"
)

// ContextPath prefixes all service routes.
const ContextPath = "/mockva"

// NewRouter creates HTTP router of use case endpoints and API schema.
func NewRouter(l *service.Locator) http.Handler {
	s := web.NewService(openapi3.NewReflector())

	schema.SetupOpenAPICollector(s.OpenAPICollector, l.Config.Version)

	s.Use(middleware.RequestID)

	s.Wrap(
		cors.AllowAll().Handler,
		nethttp.UseCaseMiddlewares(log.UseCaseMiddleware(l.Logger), l.Metrics.UseCaseMiddleware()),
		gzip.Middleware,
	)

	s.Post(ContextPath+"/accounts", usecase.RegisterAccount(l))
	s.Get(ContextPath+"/accounts/{accountId}", usecase.FindAccount(l))
	s.Patch(ContextPath+"/accounts/{accountId}", usecase.EditAccount(l))
	s.Post(ContextPath+"/accountTransactions/transfer", usecase.Transfer(l))

	s.Get(ContextPath+"/healthz", usecase.Health())
	s.Get(ContextPath+"/version", usecase.Version(l.Config.Version))
	s.Method(http.MethodGet, ContextPath+"/metrics", l.Metrics.Handler())

	s.Method(http.MethodGet, apidocs.SpecURL, s.OpenAPICollector)

	return s
}
