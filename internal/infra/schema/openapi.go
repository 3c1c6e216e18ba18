// Package schema instruments OpenAPI schema.
package schema

import (
	"github.com/swaggest/rest/openapi"
)

// SetupOpenAPICollector sets up API documentation collector.
func SetupOpenAPICollector(apiSchema *openapi.Collector, version string) {
	apiSchema.SpecSchema().SetTitle("Mockva API")
	apiSchema.SpecSchema().SetDescription("Mock virtual account service: accounts and transfers between them.")
	apiSchema.SpecSchema().SetVersion(version)
}
