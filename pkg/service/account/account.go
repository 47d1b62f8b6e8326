// Package account implements the account transaction engine: balance
// mutation with a protected minimum balance, a rolling daily withdrawal cap,
// and an immutable transaction record for every committed mutation.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/imansdev/ackownt/pkg/config"
	"github.com/imansdev/ackownt/pkg/domain"
	"github.com/imansdev/ackownt/pkg/domain/account"
	"github.com/imansdev/ackownt/pkg/domain/user"
	"github.com/imansdev/ackownt/pkg/dto"
	"github.com/imansdev/ackownt/pkg/repository"
	accountrepo "github.com/imansdev/ackownt/pkg/repository/account"
	transactionrepo "github.com/imansdev/ackownt/pkg/repository/transaction"
	"github.com/google/uuid"
)

// trackingAttempts bounds the regeneration loop on tracking number
// collisions. The token space makes more than one retry astronomically rare.
const trackingAttempts = 5

var errTrackingExhausted = errors.New(
	"could not generate a unique tracking number")

// Statement bundles an account projection with its transaction history.
type Statement struct {
	Account      *dto.AccountRead       `json:"account"`
	Transactions []*dto.TransactionRead `json:"transactions"`
}

// Service orchestrates account creation, charges and deductions. Every
// public operation runs in one unit of work: the balance update and the
// transaction record commit together or not at all.
type Service struct {
	uow    repository.UnitOfWork
	cfg    *config.Account
	logger *slog.Logger
}

// New creates an account Service.
func New(
	uow repository.UnitOfWork,
	cfg *config.Account,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger}
}

// CreateAccount opens the single account of a user with an initial deposit.
// The deposit must exceed the configured minimum balance, and a user may
// own at most one account. A CHARGE transaction is recorded for the deposit.
func (s *Service) CreateAccount(
	ctx context.Context,
	email string,
	amount int64,
) (tx *dto.TransactionRead, err error) {
	log := s.logger.With("context", "CreateAccount", "email", email)
	if amount <= s.cfg.MinBalance {
		return nil, domain.NewValidationError(fmt.Sprintf(
			"Initial deposit must be greater than %d", s.cfg.MinBalance))
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		u, accountRepo, txRepo, err := s.resolveUser(ctx, uow, email)
		if err != nil {
			return err
		}
		existing, err := accountRepo.GetByUserID(ctx, u.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.NewValidationError(account.ErrAccountExists.Error())
		}

		a := account.New(u.ID, amount)
		if err = accountRepo.Create(ctx, &dto.AccountCreate{
			ID:            a.ID,
			UserID:        a.UserID,
			AccountNumber: a.AccountNumber,
			Balance:       a.Balance,
			CreationDate:  a.CreationDate,
		}); err != nil {
			return err
		}

		tx, err = s.recordTransaction(ctx, txRepo, u.ID, amount,
			account.TypeCharge, account.ChargingSuccessful,
			a.Balance-s.cfg.MinBalance)
		return err
	})
	if err != nil {
		log.Error("CreateAccount failed", "error", err)
		tx = nil
		return
	}
	log.Info("CreateAccount successful", "trackingNumber", tx.TrackingNumber)
	return
}

// Charge adds a positive amount to the user's balance and records a CHARGE
// transaction.
func (s *Service) Charge(
	ctx context.Context,
	email string,
	amount int64,
) (tx *dto.TransactionRead, err error) {
	log := s.logger.With("context", "Charge", "email", email)
	if amount <= 0 {
		return nil, domain.NewValidationError("Amount must be a positive number")
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		u, accountRepo, txRepo, err := s.resolveUser(ctx, uow, email)
		if err != nil {
			return err
		}
		a, err := accountRepo.GetByUserIDForUpdate(ctx, u.ID)
		if err != nil {
			return err
		}
		if a == nil {
			return account.ErrAccountNotFound
		}

		newBalance := a.Balance + amount
		if err = accountRepo.UpdateBalance(ctx, a.ID, newBalance); err != nil {
			return err
		}

		tx, err = s.recordTransaction(ctx, txRepo, u.ID, amount,
			account.TypeCharge, account.ChargingSuccessful,
			newBalance-s.cfg.MinBalance)
		return err
	})
	if err != nil {
		log.Error("Charge failed", "error", err)
		tx = nil
		return
	}
	log.Info("Charge successful", "trackingNumber", tx.TrackingNumber)
	return
}

// Deduct withdraws an amount from the user's balance. The amount must lie
// strictly between the configured withdrawal bounds, today's accumulated
// deductions plus the amount must not exceed the daily cap, and the balance
// may never drop below the protected minimum. A DEDUCTION transaction is
// recorded on success.
func (s *Service) Deduct(
	ctx context.Context,
	email string,
	amount int64,
) (tx *dto.TransactionRead, err error) {
	log := s.logger.With("context", "Deduct", "email", email)
	if amount <= s.cfg.MinWithdrawal || amount >= s.cfg.MaxWithdrawal {
		return nil, domain.NewValidationError(fmt.Sprintf(
			"Amount must be between %d and %d",
			s.cfg.MinWithdrawal, s.cfg.MaxWithdrawal))
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		u, accountRepo, txRepo, err := s.resolveUser(ctx, uow, email)
		if err != nil {
			return err
		}
		a, err := accountRepo.GetByUserIDForUpdate(ctx, u.ID)
		if err != nil {
			return err
		}
		if a == nil {
			return account.ErrAccountNotFound
		}

		deductedToday, err := txRepo.SumDeductionsOnDate(ctx, u.ID, time.Now())
		if err != nil {
			return err
		}
		if deductedToday+amount > s.cfg.MaxWithdrawal {
			return domain.NewValidationError(fmt.Sprintf(
				"Total daily deductions must be less than %d", s.cfg.MaxWithdrawal))
		}

		if a.Balance-s.cfg.MinBalance < amount {
			return domain.NewValidationError(
				"Insufficient balance for this deduction")
		}

		newBalance := a.Balance - amount
		if err = accountRepo.UpdateBalance(ctx, a.ID, newBalance); err != nil {
			return err
		}

		tx, err = s.recordTransaction(ctx, txRepo, u.ID, amount,
			account.TypeDeduction, account.DeductionSuccessful,
			newBalance-s.cfg.MinBalance)
		return err
	})
	if err != nil {
		log.Error("Deduct failed", "error", err)
		tx = nil
		return
	}
	log.Info("Deduct successful", "trackingNumber", tx.TrackingNumber)
	return
}

// GetAccountAndTransactions returns the user's account projection together
// with the full transaction history, newest first.
func (s *Service) GetAccountAndTransactions(
	ctx context.Context,
	email string,
) (statement *Statement, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		u, accountRepo, txRepo, err := s.resolveUser(ctx, uow, email)
		if err != nil {
			return err
		}
		a, err := accountRepo.GetByUserID(ctx, u.ID)
		if err != nil {
			return err
		}
		if a == nil {
			return account.ErrAccountNotFound
		}
		txs, err := txRepo.ListByUserID(ctx, u.ID)
		if err != nil {
			return err
		}
		statement = &Statement{Account: a, Transactions: txs}
		return nil
	})
	if err != nil {
		statement = nil
	}
	return
}

// resolveUser looks up the acting user and the repositories bound to the
// current unit of work.
func (s *Service) resolveUser(
	ctx context.Context,
	uow repository.UnitOfWork,
	email string,
) (*dto.UserRead, accountrepo.Repository, transactionrepo.Repository, error) {
	userRepo, err := uow.UserRepository()
	if err != nil {
		return nil, nil, nil, err
	}
	accountRepo, err := uow.AccountRepository()
	if err != nil {
		return nil, nil, nil, err
	}
	txRepo, err := uow.TransactionRepository()
	if err != nil {
		return nil, nil, nil, err
	}
	u, err := userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, nil, err
	}
	if u == nil {
		return nil, nil, nil, user.ErrUserNotFound
	}
	return u, accountRepo, txRepo, nil
}

// recordTransaction appends an immutable transaction record, regenerating
// the tracking number on the rare collision.
func (s *Service) recordTransaction(
	ctx context.Context,
	txRepo transactionrepo.Repository,
	userID uuid.UUID,
	amount int64,
	txType account.TransactionType,
	description account.Description,
	withdrawalBalance int64,
) (*dto.TransactionRead, error) {
	for i := 0; i < trackingAttempts; i++ {
		trackingNumber := account.GenerateTrackingNumber()
		exists, err := txRepo.ExistsByTrackingNumber(ctx, trackingNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}
		create := &dto.TransactionCreate{
			ID:                uuid.New(),
			UserID:            userID,
			Type:              txType,
			Status:            account.StatusSuccessful,
			Amount:            amount,
			TrackingNumber:    trackingNumber,
			Date:              time.Now(),
			Description:       description,
			WithdrawalBalance: withdrawalBalance,
		}
		if err = txRepo.Create(ctx, create); err != nil {
			return nil, err
		}
		return &dto.TransactionRead{
			ID:                create.ID,
			UserID:            create.UserID,
			Type:              create.Type,
			Status:            create.Status,
			Amount:            create.Amount,
			TrackingNumber:    create.TrackingNumber,
			Date:              create.Date,
			Description:       create.Description.Message(),
			WithdrawalBalance: create.WithdrawalBalance,
		}, nil
	}
	return nil, errTrackingExhausted
}
