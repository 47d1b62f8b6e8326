// Package auth exposes the session endpoint.
package auth

import (
	"errors"

	"github.com/imansdev/ackownt/pkg/domain/user"
	authsvc "github.com/imansdev/ackownt/pkg/service/auth"
	"github.com/imansdev/ackownt/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the public session endpoint.
func Routes(app *fiber.App, authSvc *authsvc.Service) {
	app.Post("/sessions", Login(authSvc))
}

// Login authenticates the email/password pair and returns a bearer token.
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginRequest](c)
		if input == nil {
			return err
		}
		u, err := authSvc.Login(c.Context(), input.Email, input.Password)
		if err != nil {
			if errors.Is(err, user.ErrUserUnauthorized) {
				return common.ProblemDetailsJSON(c, "Invalid email or password",
					nil, "Email or password is incorrect", fiber.StatusUnauthorized)
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		token, err := authSvc.GenerateToken(u)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Success login",
			fiber.Map{"token": token})
	}
}
