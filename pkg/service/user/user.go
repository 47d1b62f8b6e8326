// Package user provides business logic for registration and profile
// management.
package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/imansdev/ackownt/pkg/config"
	"github.com/imansdev/ackownt/pkg/domain"
	"github.com/imansdev/ackownt/pkg/domain/user"
	"github.com/imansdev/ackownt/pkg/dto"
	"github.com/imansdev/ackownt/pkg/repository"
	"github.com/imansdev/ackownt/pkg/utils"
	"github.com/google/uuid"
)

// Service provides user registration, profile reads and updates, and full
// account deletion.
type Service struct {
	uow    repository.UnitOfWork
	cfg    *config.Account
	logger *slog.Logger
}

// New creates a user Service.
func New(
	uow repository.UnitOfWork,
	cfg *config.Account,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger}
}

// RegisterInput carries the registration data with the plaintext password.
type RegisterInput struct {
	Name           string
	Surname        string
	NationalID     string
	DateOfBirth    time.Time
	Gender         user.Gender
	Email          string
	PhoneNumber    string
	MilitaryStatus user.MilitaryStatus
	Password       string
}

// UpdateInput carries the profile fields a user may change. Nil fields keep
// their current value.
type UpdateInput struct {
	Name           *string
	Surname        *string
	PhoneNumber    *string
	MilitaryStatus *user.MilitaryStatus
	Password       *string
}

// CreateUser registers a new user. Email, phone number and national ID must
// be unique, the eligibility rules must pass, and the password is stored as
// a bcrypt hash. Everything runs in one transaction.
func (s *Service) CreateUser(
	ctx context.Context,
	input *RegisterInput,
) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "CreateUser", "email", input.Email)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}

		if existing, err := repo.GetByEmail(ctx, input.Email); err != nil {
			return err
		} else if existing != nil {
			return domain.NewValidationError("Email must be unique")
		}
		if existing, err := repo.GetByPhoneNumber(ctx, input.PhoneNumber); err != nil {
			return err
		} else if existing != nil {
			return domain.NewValidationError("Phone number must be unique")
		}
		if existing, err := repo.GetByNationalID(ctx, input.NationalID); err != nil {
			return err
		} else if existing != nil {
			return domain.NewValidationError("National ID must be unique")
		}

		draft := &user.User{
			ID:             uuid.New(),
			Name:           input.Name,
			Surname:        input.Surname,
			NationalID:     input.NationalID,
			DateOfBirth:    input.DateOfBirth,
			Gender:         input.Gender,
			Email:          input.Email,
			PhoneNumber:    input.PhoneNumber,
			MilitaryStatus: input.MilitaryStatus,
		}
		if violations := user.ValidateEligibility(draft, s.cfg.CutOffAge); len(violations) > 0 {
			return domain.NewFieldValidationError(user.ViolationsToFields(violations))
		}

		hashed, err := utils.HashPassword(input.Password)
		if err != nil {
			return err
		}
		if err = repo.Create(ctx, &dto.UserCreate{
			ID:             draft.ID,
			Name:           draft.Name,
			Surname:        draft.Surname,
			NationalID:     draft.NationalID,
			DateOfBirth:    draft.DateOfBirth,
			Gender:         draft.Gender,
			Email:          draft.Email,
			PhoneNumber:    draft.PhoneNumber,
			MilitaryStatus: draft.MilitaryStatus,
			Password:       hashed,
		}); err != nil {
			return err
		}

		u, err = repo.GetByEmail(ctx, input.Email)
		return err
	})
	if err != nil {
		log.Error("CreateUser failed", "error", err)
		u = nil
		return
	}
	log.Info("CreateUser successful", "userID", u.ID)
	return
}

// GetUserInfo retrieves the profile of the user with the given email.
func (s *Service) GetUserInfo(
	ctx context.Context,
	email string,
) (u *dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = repo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if u == nil {
			return user.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		u = nil
	}
	return
}

// UpdateUserInfo changes the mutable profile fields of a user. The new
// phone number must not belong to another user and the merged record must
// still pass the eligibility rules. A new password is re-hashed.
func (s *Service) UpdateUserInfo(
	ctx context.Context,
	email string,
	input *UpdateInput,
) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "UpdateUserInfo", "email", email)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		current, err := repo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if current == nil {
			return user.ErrUserNotFound
		}

		if input.PhoneNumber != nil {
			other, err := repo.GetByPhoneNumber(ctx, *input.PhoneNumber)
			if err != nil {
				return err
			}
			if other != nil && other.ID != current.ID {
				return domain.NewValidationError("Phone number must be unique")
			}
		}

		merged := current.Entity()
		if input.Name != nil {
			merged.Name = *input.Name
		}
		if input.Surname != nil {
			merged.Surname = *input.Surname
		}
		if input.PhoneNumber != nil {
			merged.PhoneNumber = *input.PhoneNumber
		}
		if input.MilitaryStatus != nil {
			merged.MilitaryStatus = *input.MilitaryStatus
		}
		if violations := user.ValidateEligibility(merged, s.cfg.CutOffAge); len(violations) > 0 {
			return domain.NewFieldValidationError(user.ViolationsToFields(violations))
		}

		update := &dto.UserUpdate{
			Name:           input.Name,
			Surname:        input.Surname,
			PhoneNumber:    input.PhoneNumber,
			MilitaryStatus: input.MilitaryStatus,
		}
		if input.Password != nil {
			hashed, err := utils.HashPassword(*input.Password)
			if err != nil {
				return err
			}
			update.Password = &hashed
		}
		if err = repo.Update(ctx, current.ID, update); err != nil {
			return err
		}

		u, err = repo.GetByEmail(ctx, email)
		return err
	})
	if err != nil {
		log.Error("UpdateUserInfo failed", "error", err)
		u = nil
		return
	}
	log.Info("UpdateUserInfo successful", "userID", u.ID)
	return
}

// DeleteUserAndData removes the user's transactions and the user record
// itself in one transaction. The account row cascades with the user.
func (s *Service) DeleteUserAndData(
	ctx context.Context,
	email string,
) (err error) {
	log := s.logger.With("context", "DeleteUserAndData", "email", email)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		userRepo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		u, err := userRepo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if u == nil {
			return user.ErrUserNotFound
		}
		if err = txRepo.DeleteAllForUser(ctx, u.ID); err != nil {
			return err
		}
		return userRepo.Delete(ctx, u.ID)
	})
	if err != nil {
		log.Error("DeleteUserAndData failed", "error", err)
		return
	}
	log.Info("DeleteUserAndData successful")
	return
}
