package usecase

import (
	"context"
	"net/http"

	"github.com/mrth1995/go-mockva/internal/domain/account"
	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
)

type openedAccount struct {
	account.Entity
}

// HTTPStatus implements rest.OutputWithHTTPStatus.
func (openedAccount) HTTPStatus() int {
	return http.StatusCreated
}

// ExpectedHTTPStatuses implements rest.OutputWithHTTPStatus.
func (openedAccount) ExpectedHTTPStatuses() []int {
	return []int{http.StatusCreated}
}

// RegisterAccount creates usecase interactor.
func RegisterAccount(deps interface {
	AccountRegisterer() account.Registerer
},
) usecase.Interactor {
	u := usecase.NewInteractor(func(ctx context.Context, in account.Registration, out *openedAccount) (err error) {
		if err := in.Validate(); err != nil {
			return err
		}

		out.Entity, err = deps.AccountRegisterer().Register(ctx, in)

		return err
	})

	u.SetName("registerAccount")
	u.SetDescription("Open account with zero balance.")
	u.SetExpectedErrors(
		status.AlreadyExists,
		status.InvalidArgument,
	)
	u.SetTags("Accounts")

	return u
}
