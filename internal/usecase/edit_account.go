package usecase

import (
	"context"

	"github.com/mrth1995/go-mockva/internal/domain/account"
	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
)

type editAccount struct {
	account.Identity `json:"-"`
	account.Patch
}

// EditAccount creates usecase interactor.
func EditAccount(deps interface {
	AccountEditor() account.Editor
},
) usecase.Interactor {
	u := usecase.NewInteractor(func(ctx context.Context, in editAccount, out *account.Entity) (err error) {
		if err := in.Patch.Validate(); err != nil {
			return err
		}

		*out, err = deps.AccountEditor().Edit(ctx, in.ID, in.Patch)

		return err
	})

	u.SetName("editAccount")
	u.SetTitle("Edit Account")
	u.SetDescription("Update account profile, omitted fields are kept.")
	u.SetExpectedErrors(
		status.NotFound,
		status.InvalidArgument,
	)
	u.SetTags("Accounts")

	return u
}
