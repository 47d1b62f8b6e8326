package repository

import (
	infraaccount "github.com/imansdev/ackownt/infra/repository/account"
	infratransaction "github.com/imansdev/ackownt/infra/repository/transaction"
	infrauser "github.com/imansdev/ackownt/infra/repository/user"
	"gorm.io/gorm"
)

// Migrate creates or updates the database schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&infrauser.User{},
		&infraaccount.Account{},
		&infratransaction.Transaction{},
	)
}
