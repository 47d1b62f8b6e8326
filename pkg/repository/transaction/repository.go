// Package transaction defines the data-access contract for the immutable
// transaction log.
package transaction

import (
	"context"
	"time"

	"github.com/imansdev/ackownt/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for transaction data access. Records are
// append-only: there is no update operation, and deletion happens only in
// bulk when the owning user is removed.
type Repository interface {
	// Create appends a new transaction record.
	Create(ctx context.Context, create *dto.TransactionCreate) error

	// ListByUserID retrieves all transactions of a user, newest first.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*dto.TransactionRead, error)

	// SumDeductionsOnDate sums the amounts of all DEDUCTION transactions of
	// the user dated on the given calendar day.
	SumDeductionsOnDate(ctx context.Context, userID uuid.UUID, date time.Time) (int64, error)

	// ExistsByTrackingNumber reports whether a transaction with the given
	// tracking number already exists.
	ExistsByTrackingNumber(ctx context.Context, trackingNumber string) (bool, error)

	// DeleteAllForUser removes every transaction of the given user.
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) error
}
