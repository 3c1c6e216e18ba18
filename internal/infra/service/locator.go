package service

import (
	"github.com/mrth1995/go-mockva/internal/apidocs"
	"github.com/mrth1995/go-mockva/internal/infra/metrics"
	"github.com/mrth1995/go-mockva/pkg/graceful"
	"github.com/sirupsen/logrus"
)

// Locator defines application services.
type Locator struct {
	graceful.Shutdown

	Config  Config
	Logger  *logrus.Logger
	Metrics *metrics.Collector
	Docs    *apidocs.Handler

	AccountFinderProvider
	AccountRegistererProvider
	AccountEditorProvider
	TransferrerProvider
}
