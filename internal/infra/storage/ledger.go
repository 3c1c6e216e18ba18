package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mrth1995/go-mockva/internal/domain/account"
	"github.com/mrth1995/go-mockva/internal/domain/transfer"
)

// Ledger runs transfers in SQLite transactions.
type Ledger struct {
	DB *sql.DB
}

var _ transfer.Ledger = (*Ledger)(nil)

// InTx implements transfer.Ledger.
func (l *Ledger) InTx(ctx context.Context, fn func(ctx context.Context, tx transfer.Tx) error) error {
	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(ctx, ledgerTx{tx: tx}); err != nil {
		_ = tx.Rollback()

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

type ledgerTx struct {
	tx *sql.Tx
}

func (t ledgerTx) Account(ctx context.Context, id string) (account.Entity, error) {
	return findAccount(ctx, t.tx, id)
}

func (t ledgerTx) SetBalance(ctx context.Context, id string, balance float64) error {
	if _, err := t.tx.ExecContext(ctx, `UPDATE accounts SET balance = ? WHERE id = ?`, balance, id); err != nil {
		return fmt.Errorf("update balance: %w", err)
	}

	return nil
}

func (t ledgerTx) Record(ctx context.Context, tr transfer.Transaction) error {
	if _, err := t.tx.ExecContext(ctx,
		`INSERT INTO account_transactions (id, amount, account_src_id, account_dst_id, transaction_timestamp) `+
			`VALUES (?, ?, ?, ?, ?)`,
		tr.ID, tr.Amount, tr.SrcID, tr.DstID, tr.Timestamp.Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	return nil
}
