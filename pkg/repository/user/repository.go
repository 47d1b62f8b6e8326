// Package user defines the data-access contract for user records.
package user

import (
	"context"

	"github.com/imansdev/ackownt/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for user data access. Lookups return
// (nil, nil) when no record matches; callers decide whether that is an error.
type Repository interface {
	// Create inserts a new user record from a DTO.
	Create(ctx context.Context, create *dto.UserCreate) error

	// Get retrieves a user by its ID.
	Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)

	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (*dto.UserRead, error)

	// GetByPhoneNumber retrieves a user by phone number.
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*dto.UserRead, error)

	// GetByNationalID retrieves a user by national ID.
	GetByNationalID(ctx context.Context, nationalID string) (*dto.UserRead, error)

	// Update applies the non-nil fields of the update DTO to the user.
	Update(ctx context.Context, id uuid.UUID, update *dto.UserUpdate) error

	// Delete removes a user by its ID. The account row cascades.
	Delete(ctx context.Context, id uuid.UUID) error
}
