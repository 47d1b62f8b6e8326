// Package account defines the data-access contract for account records.
package account

import (
	"context"

	"github.com/imansdev/ackownt/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for account data access. Lookups return
// (nil, nil) when the user has no account.
type Repository interface {
	// Create inserts a new account record.
	Create(ctx context.Context, create *dto.AccountCreate) error

	// GetByUserID retrieves the account owned by the given user.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*dto.AccountRead, error)

	// GetByUserIDForUpdate retrieves the account owned by the given user and
	// locks its row for the duration of the surrounding transaction, so
	// concurrent balance mutations on the same account serialize.
	GetByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*dto.AccountRead, error)

	// UpdateBalance sets the balance of the account with the given ID.
	UpdateBalance(ctx context.Context, id uuid.UUID, balance int64) error
}
