// Package log provides logging helpers.
package log

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/swaggest/rest"
	"github.com/swaggest/usecase"
)

// New creates text logger with millisecond timestamps.
func New(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	l := logrus.New()
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	return l, nil
}

// UseCaseMiddleware creates logging use case middleware.
func UseCaseMiddleware(logger logrus.FieldLogger) usecase.Middleware {
	return usecase.MiddlewareFunc(func(next usecase.Interactor) usecase.Interactor {
		var (
			hasName usecase.HasName
			name    = "unknown"
		)

		if usecase.As(next, &hasName) {
			name = hasName.Name()
		}

		return usecase.Interact(func(ctx context.Context, input, output any) error {
			err := next.Interact(ctx, input, output)
			if err == nil {
				return nil
			}

			code, resp := rest.Err(err)
			entry := logger.WithFields(logrus.Fields{
				"usecase": name,
				"status":  code,
				"input":   input,
			})

			if resp.AppCode != 0 {
				entry = entry.WithField("code", resp.AppCode)
			}

			var withFields rest.ErrWithFields
			if errors.As(err, &withFields) {
				entry = entry.WithFields(withFields.Fields())
			}

			if code >= 500 {
				entry.WithError(err).Error("usecase failed")
			} else {
				entry.WithError(err).Warn("usecase rejected")
			}

			return err
		})
	})
}
