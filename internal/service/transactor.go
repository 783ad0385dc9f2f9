// internal/service/transactor.go
package service

import (
	"context"
	"fmt"

	"localscoop/internal/repository"
	"localscoop/pkg/db"
)

// Transactor bundles the transaction lifecycle injected into services.
// Tests replace Begin, Commit and Rollback with mocks.
type Transactor struct {
	Beginner db.DBTxBeginner // For starting transactions (e.g., *sqlx.DB)
	Begin    db.BeginTxFunc
	Commit   db.CommitTxFunc
	Rollback db.RollbackTxFunc
}

// NewTransactor returns a Transactor using the pkg/db lifecycle functions.
func NewTransactor(beginner db.DBTxBeginner) Transactor {
	return Transactor{
		Beginner: beginner,
		Begin:    db.BeginTx,
		Commit:   db.CommitTx,
		Rollback: db.RollbackTx,
	}
}

// withTx runs fn inside one transaction. The transaction is committed only
// when fn returns nil; the deferred rollback is a no-op after commit.
func (t Transactor) withTx(ctx context.Context, op string, fn func(q repository.DBExecutor) error) error {
	txController, err := t.Begin(ctx, t.Beginner)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer t.Rollback(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return fmt.Errorf("%s: transaction controller does not implement DBExecutor", op)
	}

	if err := fn(txExecutor); err != nil {
		return err
	}

	if err := t.Commit(txController); err != nil {
		return fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}
	return nil
}
