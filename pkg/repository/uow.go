// Package repository defines the unit-of-work contract that binds
// repository access to a single transaction boundary.
package repository

import (
	"context"

	accountrepo "github.com/imansdev/ackownt/pkg/repository/account"
	transactionrepo "github.com/imansdev/ackownt/pkg/repository/transaction"
	userrepo "github.com/imansdev/ackownt/pkg/repository/user"
)

// UnitOfWork runs work inside one transaction boundary and hands out
// repositories bound to that same session. Balance mutation, transaction
// insert and uniqueness checks commit together or not at all.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. The UnitOfWork passed to
	// fn yields repositories bound to that transaction. If fn returns an
	// error the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// UserRepository returns the user repository bound to the current session.
	UserRepository() (userrepo.Repository, error)

	// AccountRepository returns the account repository bound to the current
	// session.
	AccountRepository() (accountrepo.Repository, error)

	// TransactionRepository returns the transaction repository bound to the
	// current session.
	TransactionRepository() (transactionrepo.Repository, error)
}
