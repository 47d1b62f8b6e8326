// Package transaction implements the transaction repository on GORM.
package transaction

import (
	"context"
	"time"

	"github.com/imansdev/ackownt/pkg/domain/account"
	"github.com/imansdev/ackownt/pkg/dto"
	transactionrepo "github.com/imansdev/ackownt/pkg/repository/transaction"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type repository struct {
	db *gorm.DB
}

// New creates a transaction repository bound to the given session.
func New(db *gorm.DB) transactionrepo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.TransactionCreate,
) error {
	tx := &Transaction{
		ID:                create.ID,
		UserID:            create.UserID,
		Type:              string(create.Type),
		Status:            string(create.Status),
		Amount:            create.Amount,
		TrackingNumber:    create.TrackingNumber,
		Date:              create.Date,
		Description:       string(create.Description),
		WithdrawalBalance: create.WithdrawalBalance,
	}
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *repository) ListByUserID(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.TransactionRead, error) {
	var txs []Transaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.TransactionRead, 0, len(txs))
	for i := range txs {
		result = append(result, mapModelToDTO(&txs[i]))
	}
	return result, nil
}

func (r *repository) SumDeductionsOnDate(
	ctx context.Context,
	userID uuid.UUID,
	date time.Time,
) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND transaction_type = ? AND date = ?",
			userID, string(account.TypeDeduction), date.Format(dateLayout)).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *repository) ExistsByTrackingNumber(
	ctx context.Context,
	trackingNumber string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Transaction{}).
		Where("tracking_number = ?", trackingNumber).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) DeleteAllForUser(
	ctx context.Context,
	userID uuid.UUID,
) error {
	return r.db.WithContext(ctx).
		Delete(&Transaction{}, "user_id = ?", userID).Error
}

func mapModelToDTO(tx *Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:                tx.ID,
		UserID:            tx.UserID,
		Type:              account.TransactionType(tx.Type),
		Status:            account.TransactionStatus(tx.Status),
		Amount:            tx.Amount,
		TrackingNumber:    tx.TrackingNumber,
		Date:              tx.Date,
		Description:       account.Description(tx.Description).Message(),
		WithdrawalBalance: tx.WithdrawalBalance,
	}
}

var _ transactionrepo.Repository = (*repository)(nil)
