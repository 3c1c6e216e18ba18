package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mrth1995/go-mockva/internal/domain/account"
)

const accountColumns = `id, name, address, birth_date, gender, balance, allow_negative_balance`

// Account is a SQLite account repository.
type Account struct {
	DB *sql.DB
}

// AccountFinder is a service provider.
func (r *Account) AccountFinder() account.Finder {
	return r
}

// AccountRegisterer is a service provider.
func (r *Account) AccountRegisterer() account.Registerer {
	return r
}

// AccountEditor is a service provider.
func (r *Account) AccountEditor() account.Editor {
	return r
}

// FindByID finds account by id.
func (r *Account) FindByID(ctx context.Context, id string) (account.Entity, error) {
	return findAccount(ctx, r.DB, id)
}

// Register opens account with zero balance.
func (r *Account) Register(ctx context.Context, reg account.Registration) (account.Entity, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO accounts (`+accountColumns+`) VALUES (?, ?, ?, ?, ?, 0, ?) ON CONFLICT (id) DO NOTHING`,
		reg.ID, reg.Name, reg.Address, reg.BirthDate.String(), reg.Gender, reg.AllowNegativeBalance)
	if err != nil {
		return account.Entity{}, fmt.Errorf("insert account: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return account.Entity{}, err
	}

	if n == 0 {
		return account.Entity{}, account.ErrAlreadyExists(ctx, reg.ID)
	}

	return account.Entity{ID: reg.ID, Value: reg.Value}, nil
}

// Edit applies partial update to account profile.
func (r *Account) Edit(ctx context.Context, id string, p account.Patch) (e account.Entity, err error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return e, err
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	e, err = findAccount(ctx, tx, id)
	if err != nil {
		return e, err
	}

	p.Apply(&e)

	if _, err = tx.ExecContext(ctx,
		`UPDATE accounts SET name = ?, address = ?, birth_date = ?, gender = ?, allow_negative_balance = ? WHERE id = ?`,
		e.Name, e.Address, e.BirthDate.String(), e.Gender, e.AllowNegativeBalance, e.ID); err != nil {
		return e, fmt.Errorf("update account: %w", err)
	}

	return e, tx.Commit()
}

func findAccount(ctx context.Context, q queryer, id string) (account.Entity, error) {
	var (
		e         account.Entity
		birthDate string
	)

	err := q.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id).
		Scan(&e.ID, &e.Name, &e.Address, &birthDate, &e.Gender, &e.Balance, &e.AllowNegativeBalance)
	if errors.Is(err, sql.ErrNoRows) {
		return account.Entity{}, account.ErrNotFound(ctx, id)
	}

	if err != nil {
		return account.Entity{}, fmt.Errorf("select account: %w", err)
	}

	if e.BirthDate, err = account.ParseDate(birthDate); err != nil {
		return account.Entity{}, err
	}

	return e, nil
}
