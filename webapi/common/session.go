package common

import (
	"github.com/imansdev/ackownt/pkg/domain/user"
	authsvc "github.com/imansdev/ackownt/pkg/service/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// CurrentUserEmail resolves the acting user's email from the verified bearer
// token the JWT middleware stored on the request.
func CurrentUserEmail(c *fiber.Ctx, authSvc *authsvc.Service) (string, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return "", user.ErrUserUnauthorized
	}
	return authSvc.CurrentUserEmail(token)
}
