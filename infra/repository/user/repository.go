// Package user implements the user repository on GORM.
package user

import (
	"context"
	"errors"

	"github.com/imansdev/ackownt/pkg/domain/user"
	"github.com/imansdev/ackownt/pkg/dto"
	userrepo "github.com/imansdev/ackownt/pkg/repository/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a user repository bound to the given session.
func New(db *gorm.DB) userrepo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.UserCreate,
) error {
	u := &User{
		ID:             create.ID,
		Name:           create.Name,
		Surname:        create.Surname,
		NationalID:     create.NationalID,
		DateOfBirth:    create.DateOfBirth,
		Gender:         string(create.Gender),
		Email:          create.Email,
		PhoneNumber:    create.PhoneNumber,
		MilitaryStatus: string(create.MilitaryStatus),
		Password:       create.Password,
	}
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.UserRead, error) {
	return r.getWhere(ctx, "id = ?", id)
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*dto.UserRead, error) {
	return r.getWhere(ctx, "email = ?", email)
}

func (r *repository) GetByPhoneNumber(
	ctx context.Context,
	phoneNumber string,
) (*dto.UserRead, error) {
	return r.getWhere(ctx, "phone_number = ?", phoneNumber)
}

func (r *repository) GetByNationalID(
	ctx context.Context,
	nationalID string,
) (*dto.UserRead, error) {
	return r.getWhere(ctx, "national_id = ?", nationalID)
}

func (r *repository) getWhere(
	ctx context.Context,
	query string,
	arg any,
) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&u), nil
}

func (r *repository) Update(
	ctx context.Context,
	id uuid.UUID,
	update *dto.UserUpdate,
) error {
	updates := make(map[string]any)
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Surname != nil {
		updates["surname"] = *update.Surname
	}
	if update.PhoneNumber != nil {
		updates["phone_number"] = *update.PhoneNumber
	}
	if update.MilitaryStatus != nil {
		updates["military_status"] = string(*update.MilitaryStatus)
	}
	if update.Password != nil {
		updates["password"] = *update.Password
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) Delete(
	ctx context.Context,
	id uuid.UUID,
) error {
	return r.db.WithContext(ctx).Delete(&User{}, "id = ?", id).Error
}

func mapModelToDTO(u *User) *dto.UserRead {
	return &dto.UserRead{
		ID:             u.ID,
		Name:           u.Name,
		Surname:        u.Surname,
		NationalID:     u.NationalID,
		DateOfBirth:    u.DateOfBirth,
		Gender:         user.Gender(u.Gender),
		Email:          u.Email,
		PhoneNumber:    u.PhoneNumber,
		MilitaryStatus: user.MilitaryStatus(u.MilitaryStatus),
		HashedPassword: u.Password,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

var _ userrepo.Repository = (*repository)(nil)
