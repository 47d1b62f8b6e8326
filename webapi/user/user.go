// Package user exposes registration and profile endpoints.
package user

import (
	"time"

	"github.com/imansdev/ackownt/pkg/config"
	domainuser "github.com/imansdev/ackownt/pkg/domain/user"
	"github.com/imansdev/ackownt/pkg/middleware"
	authsvc "github.com/imansdev/ackownt/pkg/service/auth"
	usersvc "github.com/imansdev/ackownt/pkg/service/user"
	"github.com/imansdev/ackownt/webapi/common"
	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

// Routes registers the user endpoints. Registration is public; profile
// reads, updates and deletion act on the authenticated user.
func Routes(
	app *fiber.App,
	userSvc *usersvc.Service,
	authSvc *authsvc.Service,
	cfg *config.App,
) {
	app.Post("/accounts", CreateUser(userSvc))
	app.Get("/account", middleware.JwtProtected(cfg.Jwt), GetUserInfo(userSvc, authSvc))
	app.Put("/account", middleware.JwtProtected(cfg.Jwt), UpdateUserInfo(userSvc, authSvc))
	app.Delete("/account", middleware.JwtProtected(cfg.Jwt), DeleteUser(userSvc, authSvc))
}

// CreateUser registers a new user.
func CreateUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterRequest](c)
		if input == nil {
			return err
		}
		dateOfBirth, err := time.Parse(dateLayout, input.DateOfBirth)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid request body", nil,
				"date_of_birth must be formatted as YYYY-MM-DD",
				fiber.StatusBadRequest)
		}
		u, err := userSvc.CreateUser(c.Context(), &usersvc.RegisterInput{
			Name:           input.Name,
			Surname:        input.Surname,
			NationalID:     input.NationalID,
			DateOfBirth:    dateOfBirth,
			Gender:         domainuser.Gender(input.Gender),
			Email:          input.Email,
			PhoneNumber:    input.PhoneNumber,
			MilitaryStatus: domainuser.MilitaryStatus(input.MilitaryStatus),
			Password:       input.Password,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Created user",
			NewUserResponse(u))
	}
}

// GetUserInfo returns the authenticated user's profile.
func GetUserInfo(
	userSvc *usersvc.Service,
	authSvc *authsvc.Service,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := common.CurrentUserEmail(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		u, err := userSvc.GetUserInfo(c.Context(), email)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't get user info", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User found",
			NewUserResponse(u))
	}
}

// UpdateUserInfo updates the authenticated user's profile.
func UpdateUserInfo(
	userSvc *usersvc.Service,
	authSvc *authsvc.Service,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := common.CurrentUserEmail(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[UpdateRequest](c)
		if input == nil {
			return err
		}
		militaryStatus := domainuser.MilitaryStatus(input.MilitaryStatus)
		update := &usersvc.UpdateInput{
			Name:           &input.Name,
			Surname:        &input.Surname,
			PhoneNumber:    &input.PhoneNumber,
			MilitaryStatus: &militaryStatus,
		}
		if input.Password != "" {
			update.Password = &input.Password
		}
		u, err := userSvc.UpdateUserInfo(c.Context(), email, update)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update user info", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"User updated successfully", NewUserResponse(u))
	}
}

// DeleteUser removes the authenticated user with all account data.
func DeleteUser(
	userSvc *usersvc.Service,
	authSvc *authsvc.Service,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := common.CurrentUserEmail(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		if err := userSvc.DeleteUserAndData(c.Context(), email); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"Account and related data deleted successfully", nil)
	}
}
