package account

import (
	"time"

	infrauser "github.com/imansdev/ackownt/infra/repository/user"
	"github.com/google/uuid"
)

// Account represents an account record in the database. The unique index on
// UserID enforces one account per user; the foreign key cascades when the
// user row is deleted.
type Account struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key"`
	UserID        uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null"`
	User          infrauser.User `gorm:"constraint:OnDelete:CASCADE"`
	AccountNumber string         `gorm:"uniqueIndex;not null;size:10"`
	Balance       int64          `gorm:"not null"`
	CreationDate  time.Time      `gorm:"type:date;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}
