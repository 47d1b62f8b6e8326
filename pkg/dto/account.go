package dto

import (
	"time"

	"github.com/google/uuid"
)

// AccountCreate is the shape for persisting a new account.
type AccountCreate struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	AccountNumber string
	Balance       int64
	CreationDate  time.Time
}

// AccountRead is a read-optimized view of an account, also the projection
// returned inside the account statement.
type AccountRead struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	AccountNumber string    `json:"account_number"`
	Balance       int64     `json:"balance"`
	CreationDate  time.Time `json:"creation_date"`
}
