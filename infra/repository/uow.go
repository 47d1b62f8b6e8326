// Package repository implements the unit of work on a GORM connection.
package repository

import (
	"context"

	infraaccount "github.com/imansdev/ackownt/infra/repository/account"
	infratransaction "github.com/imansdev/ackownt/infra/repository/transaction"
	infrauser "github.com/imansdev/ackownt/infra/repository/user"
	"github.com/imansdev/ackownt/pkg/repository"
	accountrepo "github.com/imansdev/ackownt/pkg/repository/account"
	transactionrepo "github.com/imansdev/ackownt/pkg/repository/transaction"
	userrepo "github.com/imansdev/ackownt/pkg/repository/user"
	"gorm.io/gorm"
)

// UoW provides the transaction boundary and repository access in one
// abstraction. Repositories handed out inside Do share the transaction
// session, so a balance update and its transaction record commit together.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn in a database transaction, providing a UoW bound to it.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// session returns the transaction session when inside Do, the bare
// connection otherwise.
func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// UserRepository returns the user repository bound to the current session.
func (u *UoW) UserRepository() (userrepo.Repository, error) {
	return infrauser.New(u.session()), nil
}

// AccountRepository returns the account repository bound to the current
// session.
func (u *UoW) AccountRepository() (accountrepo.Repository, error) {
	return infraaccount.New(u.session()), nil
}

// TransactionRepository returns the transaction repository bound to the
// current session.
func (u *UoW) TransactionRepository() (transactionrepo.Repository, error) {
	return infratransaction.New(u.session()), nil
}

var _ repository.UnitOfWork = (*UoW)(nil)
