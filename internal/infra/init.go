// Package infra wires application resources.
package infra

import (
	"context"

	"github.com/mrth1995/go-mockva/internal/apidocs"
	"github.com/mrth1995/go-mockva/internal/domain/transfer"
	"github.com/mrth1995/go-mockva/internal/infra/log"
	"github.com/mrth1995/go-mockva/internal/infra/metrics"
	"github.com/mrth1995/go-mockva/internal/infra/service"
	"github.com/mrth1995/go-mockva/internal/infra/storage"
)

// NewServiceLocator initializes application resources.
func NewServiceLocator(ctx context.Context, cfg service.Config) (*service.Locator, error) {
	l := service.Locator{Config: cfg}
	l.Timeout = cfg.ShutdownTimeout

	logger, err := log.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	l.Logger = logger

	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, err
	}

	l.CloseAfterDrain("database", db, func(err error) {
		logger.WithError(err).Error("failed to close database")
	})

	accounts := &storage.Account{DB: db}

	l.AccountFinderProvider = accounts
	l.AccountRegistererProvider = accounts
	l.AccountEditorProvider = accounts
	l.TransferrerProvider = transfer.NewService(&storage.Ledger{DB: db})

	l.Metrics = metrics.NewCollector()

	l.Docs, err = apidocs.NewHandler(ctx, apidocs.Options{
		Title: "Mockva API",
		Dir:   cfg.SwaggerFilePath,
	}, apidocs.ScriptBundle(), logger)
	if err != nil {
		l.Close()

		if werr := l.Wait(); werr != nil {
			logger.WithError(werr).Error("failed to release resources")
		}

		return nil, err
	}

	l.Metrics.DocsReady()

	return &l, nil
}
