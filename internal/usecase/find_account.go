package usecase

import (
	"context"

	"github.com/mrth1995/go-mockva/internal/domain/account"
	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
)

// FindAccount creates usecase interactor.
func FindAccount(
	deps interface {
		AccountFinder() account.Finder
	},
) usecase.Interactor {
	u := usecase.NewInteractor(func(ctx context.Context, in account.Identity, out *account.Entity) (err error) {
		*out, err = deps.AccountFinder().FindByID(ctx, in.ID)

		return err
	})

	u.SetName("findAccount")
	u.SetDescription("Find account by ID.")
	u.SetExpectedErrors(status.NotFound)
	u.SetTags("Accounts")

	return u
}
