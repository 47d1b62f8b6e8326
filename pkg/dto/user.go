// Package dto defines the create/read/update shapes spoken between the
// services and the repositories.
package dto

import (
	"time"

	"github.com/imansdev/ackownt/pkg/domain/user"
	"github.com/google/uuid"
)

// UserCreate represents the data needed to create a new user. Password is
// already hashed by the time it reaches the repository.
type UserCreate struct {
	ID             uuid.UUID
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

// UserUpdate represents the fields a profile update may change. Nil fields
// are left untouched.
type UserUpdate struct {
	Name           *string
	Surname        *string
	PhoneNumber    *string
	MilitaryStatus *user.MilitaryStatus
	Password       *string
}

// UserRead is a read-optimized view of a user.
type UserRead struct {
	ID             uuid.UUID
	Name           string
	Surname        string
	NationalID     string
	DateOfBirth    time.Time
	Gender         user.Gender
	Email          string
	PhoneNumber    string
	MilitaryStatus user.MilitaryStatus
	HashedPassword string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Entity converts the read DTO back to the domain entity for rule checks.
func (u *UserRead) Entity() *user.User {
	return &user.User{
		ID:             u.ID,
		Name:           u.Name,
		Surname:        u.Surname,
		NationalID:     u.NationalID,
		DateOfBirth:    u.DateOfBirth,
		Gender:         u.Gender,
		Email:          u.Email,
		PhoneNumber:    u.PhoneNumber,
		MilitaryStatus: u.MilitaryStatus,
		Password:       u.HashedPassword,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
