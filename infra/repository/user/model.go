package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user record in the database. Email, phone number and
// national ID carry unique indexes so concurrent registrations cannot both
// commit the same identity.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	Name           string    `gorm:"not null;size:100"`
	Surname        string    `gorm:"not null;size:100"`
	NationalID     string    `gorm:"uniqueIndex;not null;size:10"`
	DateOfBirth    time.Time `gorm:"type:date;not null"`
	Gender         string    `gorm:"not null;size:10"`
	Email          string    `gorm:"uniqueIndex;not null;size:255"`
	PhoneNumber    string    `gorm:"uniqueIndex;not null;size:11"`
	MilitaryStatus string    `gorm:"not null;size:32"`
	Password       string    `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}
