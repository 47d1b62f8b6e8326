package dto

import (
	"time"

	"github.com/imansdev/ackownt/pkg/domain/account"
	"github.com/google/uuid"
)

// TransactionCreate is the shape for appending a new transaction record.
type TransactionCreate struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Type              account.TransactionType
	Status            account.TransactionStatus
	Amount            int64
	TrackingNumber    string
	Date              time.Time
	Description       account.Description
	WithdrawalBalance int64
}

// TransactionRead is a read-optimized view of a transaction, the projection
// returned by charge/deduct/create-account operations.
type TransactionRead struct {
	ID                uuid.UUID                 `json:"id"`
	UserID            uuid.UUID                 `json:"user_id"`
	Type              account.TransactionType   `json:"type"`
	Status            account.TransactionStatus `json:"status"`
	Amount            int64                     `json:"amount"`
	TrackingNumber    string                    `json:"tracking_number"`
	Date              time.Time                 `json:"date"`
	Description       string                    `json:"description"`
	WithdrawalBalance int64                     `json:"withdrawal_balance"`
}
