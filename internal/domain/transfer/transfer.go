// Package transfer moves funds between accounts.
package transfer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bool64/ctxd"
	"github.com/google/uuid"
	"github.com/mrth1995/go-mockva/internal/domain/account"
	"github.com/mrth1995/go-mockva/internal/domain/apperr"
)

// Request describes funds movement.
type Request struct {
	SrcID  string  `json:"accountSrcId" description:"Account to debit."`
	DstID  string  `json:"accountDstId" description:"Account to credit."`
	Amount float64 `json:"amount"`
}

// Validate checks request values.
func (r Request) Validate() error {
	switch {
	case strings.TrimSpace(r.SrcID) == "":
		return apperr.Invalid(errors.New("source account is required"))
	case strings.TrimSpace(r.DstID) == "":
		return apperr.Invalid(errors.New("destination account is required"))
	case r.Amount <= 0:
		return apperr.Invalid(errors.New("amount must be positive"))
	case r.SrcID == r.DstID:
		return apperr.Invalid(errors.New("source and destination accounts must differ"))
	}

	return nil
}

// Transaction is a recorded transfer.
type Transaction struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	SrcID     string    `json:"accountSrcId"`
	SrcName   string    `json:"accountSrcName"`
	DstID     string    `json:"accountDstId"`
	DstName   string    `json:"accountDstName"`
	Timestamp time.Time `json:"transactionTimestamp"`
}

// Transferrer executes transfers.
type Transferrer interface {
	Transfer(ctx context.Context, r Request) (Transaction, error)
}

// Tx is a unit of work over account balances.
type Tx interface {
	// Account returns account or an error matching status.NotFound.
	Account(ctx context.Context, id string) (account.Entity, error)
	SetBalance(ctx context.Context, id string, balance float64) error
	Record(ctx context.Context, t Transaction) error
}

// Ledger runs units of work atomically, fn error rolls back all changes.
type Ledger interface {
	InTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Service implements Transferrer on top of Ledger.
type Service struct {
	Ledger Ledger
	Now    func() time.Time
	NewID  func() string
}

// NewService creates transfer service.
func NewService(l Ledger) *Service {
	return &Service{
		Ledger: l,
		Now:    time.Now,
		NewID:  uuid.NewString,
	}
}

// Transferrer is a service provider.
func (s *Service) Transferrer() Transferrer {
	return s
}

// Transfer debits source account and credits destination account.
func (s *Service) Transfer(ctx context.Context, r Request) (Transaction, error) {
	if err := r.Validate(); err != nil {
		return Transaction{}, err
	}

	var t Transaction

	err := s.Ledger.InTx(ctx, func(ctx context.Context, tx Tx) error {
		src, err := tx.Account(ctx, r.SrcID)
		if err != nil {
			return err
		}

		dst, err := tx.Account(ctx, r.DstID)
		if err != nil {
			return err
		}

		balance := src.Balance - r.Amount
		if balance < 0 && !src.AllowNegativeBalance {
			return apperr.Invalid(ctxd.NewError(ctx, "insufficient balance",
				"accountId", src.ID, "balance", src.Balance, "amount", r.Amount))
		}

		if err := tx.SetBalance(ctx, src.ID, balance); err != nil {
			return err
		}

		if err := tx.SetBalance(ctx, dst.ID, dst.Balance+r.Amount); err != nil {
			return err
		}

		t = Transaction{
			ID:        s.NewID(),
			Amount:    r.Amount,
			SrcID:     src.ID,
			SrcName:   src.Name,
			DstID:     dst.ID,
			DstName:   dst.Name,
			Timestamp: s.Now().UTC(),
		}

		return tx.Record(ctx, t)
	})
	if err != nil {
		return Transaction{}, err
	}

	return t, nil
}
