package account

import (
	"context"
	"errors"
	"strings"

	"github.com/bool64/ctxd"
	"github.com/mrth1995/go-mockva/internal/domain/apperr"
)

// Identity identifies account.
type Identity struct {
	ID string `path:"accountId" description:"Account ID."`
}

// Value is an account profile.
type Value struct {
	Name                 string `json:"name" description:"Account holder name."`
	Address              string `json:"address,omitempty"`
	BirthDate            Date   `json:"birthDate"`
	Gender               bool   `json:"gender"`
	AllowNegativeBalance bool   `json:"allowNegativeBalance" description:"Transfers may leave balance below zero."`
}

// Registration is a request to open account.
type Registration struct {
	ID string `json:"id" description:"Account ID chosen by client."`
	Value
}

// Validate checks registration values.
func (r Registration) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return apperr.Invalid(errors.New("account id is required"))
	}

	if strings.TrimSpace(r.Name) == "" {
		return apperr.Invalid(errors.New("account name is required"))
	}

	if r.BirthDate.IsZero() {
		return apperr.Invalid(errors.New("birth date is required"))
	}

	return nil
}

// Entity is an account with its balance.
type Entity struct {
	ID string `json:"accountId"`
	Value
	Balance float64 `json:"balance"`
}

// Patch is a partial update of account profile, nil fields are left unchanged.
type Patch struct {
	Name                 *string `json:"name,omitempty"`
	Address              *string `json:"address,omitempty"`
	BirthDate            *Date   `json:"birthDate,omitempty"`
	Gender               *bool   `json:"gender,omitempty"`
	AllowNegativeBalance *bool   `json:"allowNegativeBalance,omitempty"`
}

// Validate checks patch values.
func (p Patch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return apperr.Invalid(errors.New("account name can not be empty"))
	}

	return nil
}

// Apply updates entity with non-nil fields.
func (p Patch) Apply(e *Entity) {
	if p.Name != nil {
		e.Name = *p.Name
	}

	if p.Address != nil {
		e.Address = *p.Address
	}

	if p.BirthDate != nil {
		e.BirthDate = *p.BirthDate
	}

	if p.Gender != nil {
		e.Gender = *p.Gender
	}

	if p.AllowNegativeBalance != nil {
		e.AllowNegativeBalance = *p.AllowNegativeBalance
	}
}

// ErrNotFound reports missing account.
func ErrNotFound(ctx context.Context, id string) error {
	return apperr.NotFound(ctxd.NewError(ctx, "account not found", "accountId", id))
}

// ErrAlreadyExists reports account id conflict.
func ErrAlreadyExists(ctx context.Context, id string) error {
	return apperr.AlreadyExists(ctxd.NewError(ctx, "account already exists", "accountId", id))
}
