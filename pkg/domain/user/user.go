// Package user contains the user entity and the eligibility rules that
// govern who may hold an account.
package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user cannot be found in the
	// repository.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserUnauthorized is returned when credentials do not match.
	ErrUserUnauthorized = errors.New("user unauthorized")
)

// Gender of a user. The rule engine only admits MALE and FEMALE.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// Valid reports whether g is one of the admitted genders.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// MilitaryStatus of a user.
type MilitaryStatus string

const (
	MilitaryCurrentlyServing  MilitaryStatus = "CURRENTLY_SERVING"
	MilitaryExemptFromService MilitaryStatus = "EXEMPT_FROM_SERVICE"
	MilitaryConscripted       MilitaryStatus = "CONSCRIPTED"
	MilitaryCompletedService  MilitaryStatus = "COMPLETED_SERVICE"
	MilitaryNone              MilitaryStatus = "NONE"
)

// Valid reports whether m is one of the known statuses.
func (m MilitaryStatus) Valid() bool {
	switch m {
	case MilitaryCurrentlyServing,
		MilitaryExemptFromService,
		MilitaryConscripted,
		MilitaryCompletedService,
		MilitaryNone:
		return true
	}
	return false
}

// User represents a registered user. Email, PhoneNumber and NationalID are
// unique across all users. Password holds the bcrypt hash, never plaintext.
type User struct {
	ID             uuid.UUID      `json:"id"`
	Name           string         `json:"name"`
	Surname        string         `json:"surname"`
	NationalID     string         `json:"national_id"`
	DateOfBirth    time.Time      `json:"date_of_birth"`
	Gender         Gender         `json:"gender"`
	Email          string         `json:"email"`
	PhoneNumber    string         `json:"phone_number"`
	MilitaryStatus MilitaryStatus `json:"military_status"`
	Password       string         `json:"-"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Age returns the user's age in whole years as of now.
func (u *User) Age() int {
	return AgeAt(u.DateOfBirth, time.Now())
}

// AgeAt returns the whole years elapsed between dateOfBirth and now,
// rounded down.
func AgeAt(dateOfBirth, now time.Time) int {
	years := now.Year() - dateOfBirth.Year()
	anniversary := dateOfBirth.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}
