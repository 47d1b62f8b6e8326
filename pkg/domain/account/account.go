// Package account contains the account and transaction entities together
// with the generators for their public numbers.
package account

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrAccountNotFound is returned when the user has no account yet.
	ErrAccountNotFound = errors.New(
		"user's account not found. Please create an account first")
	// ErrAccountExists is returned when the user already owns an account.
	ErrAccountExists = errors.New("account already exists for the user")
)

// TransactionType distinguishes money moving into or out of an account.
type TransactionType string

const (
	TypeCharge    TransactionType = "CHARGE"
	TypeDeduction TransactionType = "DEDUCTION"
)

// TransactionStatus records the outcome of a transaction.
type TransactionStatus string

const (
	StatusSuccessful   TransactionStatus = "SUCCESSFUL"
	StatusUnsuccessful TransactionStatus = "UNSUCCESSFUL"
)

// Description explains the outcome of a transaction.
type Description string

const (
	ChargingSuccessful  Description = "CHARGING_SUCCESSFUL"
	DeductionSuccessful Description = "DEDUCTION_SUCCESSFUL"
	ChargingFailed      Description = "CHARGING_FAILED"
	DeductionFailed     Description = "DEDUCTION_FAILED"
)

// Message returns the human-readable text for a description.
func (d Description) Message() string {
	switch d {
	case ChargingSuccessful:
		return "charging was done successfully"
	case DeductionSuccessful:
		return "deduction was done successfully"
	case ChargingFailed:
		return "charging failed"
	case DeductionFailed:
		return "deduction failed"
	}
	return string(d)
}

// Account is the single balance holder of a user. Balance is kept in integer
// minor units and must stay at or above the configured minimum balance after
// every committed operation. AccountNumber and CreationDate are immutable.
type Account struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	AccountNumber string    `json:"account_number"`
	Balance       int64     `json:"balance"`
	CreationDate  time.Time `json:"creation_date"`
}

// New creates an account for the given user with the initial balance and a
// freshly generated account number.
func New(userID uuid.UUID, balance int64) *Account {
	return &Account{
		ID:            uuid.New(),
		UserID:        userID,
		AccountNumber: GenerateAccountNumber(),
		Balance:       balance,
		CreationDate:  time.Now(),
	}
}

// Transaction is an immutable record of one balance mutation.
// WithdrawalBalance snapshots the withdrawable balance (balance minus the
// protected minimum) at commit time.
type Transaction struct {
	ID                uuid.UUID         `json:"id"`
	UserID            uuid.UUID         `json:"user_id"`
	Type              TransactionType   `json:"type"`
	Status            TransactionStatus `json:"status"`
	Amount            int64             `json:"amount"`
	TrackingNumber    string            `json:"tracking_number"`
	Date              time.Time         `json:"date"`
	Description       Description       `json:"description"`
	WithdrawalBalance int64             `json:"withdrawal_balance"`
}

// GenerateAccountNumber returns a 10-digit zero-padded random account number.
func GenerateAccountNumber() string {
	return randomDigits(10)
}

// GenerateTrackingNumber returns a 6-digit zero-padded random tracking
// number. Uniqueness is enforced at persistence time; callers regenerate on
// collision.
func GenerateTrackingNumber() string {
	return randomDigits(6)
}

func randomDigits(width int) string {
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(width)), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		// crypto/rand only fails when the platform source is broken.
		panic(err)
	}
	return fmt.Sprintf("%0*d", width, n)
}
