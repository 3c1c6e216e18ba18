package usecase

import (
	"context"

	"github.com/swaggest/usecase"
)

type healthStatus struct {
	Healthy bool `json:"healthy"`
}

// Health creates usecase interactor.
func Health() usecase.Interactor {
	u := usecase.NewInteractor(func(_ context.Context, _ struct{}, out *healthStatus) error {
		out.Healthy = true

		return nil
	})

	u.SetName("health")
	u.SetDescription("Liveness check.")
	u.SetTags("Service")

	return u
}

type versionInfo struct {
	Version string `json:"version"`
}

// Version creates usecase interactor.
func Version(version string) usecase.Interactor {
	u := usecase.NewInteractor(func(_ context.Context, _ struct{}, out *versionInfo) error {
		out.Version = version

		return nil
	})

	u.SetName("version")
	u.SetDescription("Build version of the service.")
	u.SetTags("Service")

	return u
}
