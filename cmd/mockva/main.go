package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/mrth1995/go-mockva/internal/infra"
	"github.com/mrth1995/go-mockva/internal/infra/nethttp"
	"github.com/mrth1995/go-mockva/internal/infra/service"
	"github.com/sirupsen/logrus"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	help := flag.Bool("h", false, "Show configuration help.")
	flag.Parse()

	// Initialize config from ENV vars.
	cfg := service.Config{}

	if *help {
		_ = envconfig.Usage("", &cfg)

		return
	}

	if err := envconfig.Process("", &cfg); err != nil {
		logrus.Fatal(err)
	}

	cfg.Version = version

	// Initialize application resources.
	l, err := infra.NewServiceLocator(context.Background(), cfg)
	if err != nil {
		logrus.Fatal(err)
	}

	// Terminate service locator on CTRL+C (SIGTERM or SIGINT).
	l.EnableGracefulShutdown()

	// Initialize HTTP server.
	srv := nethttp.NewServer(l)

	// Start HTTP server.
	l.Logger.WithField("version", version).
		Infof("starting HTTP server at http://localhost:%d/mockva/apidocs", cfg.HTTPPort)

	go func() {
		if err := srv.ListenAndServe(fmt.Sprintf(":%d", cfg.HTTPPort)); err != nil {
			l.Logger.WithError(err).Error("HTTP server failed")
			l.Close()
		}
	}()

	// Wait for termination signal and HTTP shutdown finished.
	if err := l.WaitToShutdownFastHTTP(srv, "http"); err != nil {
		l.Logger.WithError(err).Error("HTTP server shutdown failed")
	}

	// Wait for service locator termination finished, database is closed after HTTP drain.
	if err := l.Wait(); err != nil {
		l.Logger.Fatal(err)
	}

	l.Logger.Info("server stopped")
}
