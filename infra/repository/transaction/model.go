package transaction

import (
	"time"

	infrauser "github.com/imansdev/ackownt/infra/repository/user"
	"github.com/google/uuid"
)

// Transaction represents a persisted transaction record. Rows are append
// only; the unique index on TrackingNumber rejects the rare generator
// collision.
type Transaction struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key"`
	UserID            uuid.UUID      `gorm:"type:uuid;index;not null"`
	User              infrauser.User `gorm:"constraint:OnDelete:CASCADE"`
	Type              string         `gorm:"column:transaction_type;not null;size:16"`
	Status            string         `gorm:"not null;size:16"`
	Amount            int64          `gorm:"not null"`
	TrackingNumber    string         `gorm:"uniqueIndex;not null;size:6"`
	Date              time.Time      `gorm:"type:date;not null"`
	Description       string         `gorm:"not null;size:32"`
	WithdrawalBalance int64          `gorm:"not null"`
	CreatedAt         time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
