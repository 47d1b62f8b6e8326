// Package account implements the account repository on GORM.
package account

import (
	"context"
	"errors"

	"github.com/imansdev/ackownt/pkg/dto"
	accountrepo "github.com/imansdev/ackownt/pkg/repository/account"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New creates an account repository bound to the given session.
func New(db *gorm.DB) accountrepo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.AccountCreate,
) error {
	a := &Account{
		ID:            create.ID,
		UserID:        create.UserID,
		AccountNumber: create.AccountNumber,
		Balance:       create.Balance,
		CreationDate:  create.CreationDate,
	}
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) GetByUserID(
	ctx context.Context,
	userID uuid.UUID,
) (*dto.AccountRead, error) {
	return r.getByUserID(ctx, userID, false)
}

// GetByUserIDForUpdate locks the account row so concurrent charge/deduct
// operations on the same account serialize at the datastore.
func (r *repository) GetByUserIDForUpdate(
	ctx context.Context,
	userID uuid.UUID,
) (*dto.AccountRead, error) {
	return r.getByUserID(ctx, userID, true)
}

func (r *repository) getByUserID(
	ctx context.Context,
	userID uuid.UUID,
	forUpdate bool,
) (*dto.AccountRead, error) {
	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var a Account
	if err := tx.Where("user_id = ?", userID).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&a), nil
}

func (r *repository) UpdateBalance(
	ctx context.Context,
	id uuid.UUID,
	balance int64,
) error {
	return r.db.WithContext(ctx).Model(&Account{}).
		Where("id = ?", id).
		Update("balance", balance).Error
}

func mapModelToDTO(a *Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:            a.ID,
		UserID:        a.UserID,
		AccountNumber: a.AccountNumber,
		Balance:       a.Balance,
		CreationDate:  a.CreationDate,
	}
}

var _ accountrepo.Repository = (*repository)(nil)
