package usecase

import (
	"context"

	"github.com/mrth1995/go-mockva/internal/domain/transfer"
	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
)

// Transfer creates usecase interactor.
func Transfer(deps interface {
	Transferrer() transfer.Transferrer
},
) usecase.Interactor {
	u := usecase.NewInteractor(func(ctx context.Context, in transfer.Request, out *transfer.Transaction) (err error) {
		*out, err = deps.Transferrer().Transfer(ctx, in)

		return err
	})

	u.SetName("transfer")
	u.SetDescription("Move funds between accounts.")
	u.SetExpectedErrors(
		status.NotFound,
		status.InvalidArgument,
	)
	u.SetTags("Account Transactions")

	return u
}
