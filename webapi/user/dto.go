package user

import (
	"time"

	"github.com/imansdev/ackownt/pkg/dto"
	"github.com/google/uuid"
)

// RegisterRequest is the request body for creating a new user.
type RegisterRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	Surname        string `json:"surname" validate:"required,max=100"`
	NationalID     string `json:"national_id" validate:"required,len=10,numeric"`
	DateOfBirth    string `json:"date_of_birth" validate:"required"`
	Gender         string `json:"gender" validate:"required"`
	Email          string `json:"email" validate:"required,email,max=255"`
	PhoneNumber    string `json:"phone_number" validate:"required,len=11,numeric"`
	MilitaryStatus string `json:"military_status" validate:"required"`
	Password       string `json:"password" validate:"required,min=6,max=72"`
}

// UpdateRequest is the request body for updating the user's profile.
type UpdateRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	Surname        string `json:"surname" validate:"required,max=100"`
	PhoneNumber    string `json:"phone_number" validate:"required,len=11,numeric"`
	MilitaryStatus string `json:"military_status" validate:"required"`
	Password       string `json:"password" validate:"omitempty,min=6,max=72"`
}

// UserResponse is the profile projection returned to clients. The password
// hash never leaves the service layer.
type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Surname        string    `json:"surname"`
	NationalID     string    `json:"national_id"`
	DateOfBirth    string    `json:"date_of_birth"`
	Gender         string    `json:"gender"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phone_number"`
	MilitaryStatus string    `json:"military_status"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewUserResponse projects a read DTO to the client shape.
func NewUserResponse(u *dto.UserRead) *UserResponse {
	return &UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Surname:        u.Surname,
		NationalID:     u.NationalID,
		DateOfBirth:    u.DateOfBirth.Format("2006-01-02"),
		Gender:         string(u.Gender),
		Email:          u.Email,
		PhoneNumber:    u.PhoneNumber,
		MilitaryStatus: string(u.MilitaryStatus),
		CreatedAt:      u.CreatedAt,
	}
}
