// Package auth provides credential checks and JWT issuing. The token's
// subject is the user's email; authenticated routes resolve the acting user
// from it.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/imansdev/ackownt/pkg/config"
	"github.com/imansdev/ackownt/pkg/domain/user"
	"github.com/imansdev/ackownt/pkg/dto"
	"github.com/imansdev/ackownt/pkg/repository"
	"github.com/imansdev/ackownt/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
)

// Service authenticates users and issues bearer tokens.
type Service struct {
	uow    repository.UnitOfWork
	cfg    *config.Jwt
	logger *slog.Logger
}

// New creates an auth Service.
func New(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger}
}

// Login verifies the email/password pair and returns the matching user.
// Unknown email and wrong password both yield ErrUserUnauthorized; a dummy
// hash comparison keeps the timing of the two paths level.
func (s *Service) Login(
	ctx context.Context,
	email, password string,
) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "Login", "email", email)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = repo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}

		const dummyHash = "$2a$10$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"
		if u == nil {
			_ = utils.CheckPasswordHash(password, dummyHash)
			return user.ErrUserUnauthorized
		}
		if !utils.CheckPasswordHash(password, u.HashedPassword) {
			return user.ErrUserUnauthorized
		}
		return nil
	})
	if err != nil {
		log.Error("Login failed", "error", err)
		u = nil
		return
	}
	log.Info("Login successful", "userID", u.ID)
	return
}

// GenerateToken signs an HS256 JWT for the user with the email as subject.
func (s *Service) GenerateToken(u *dto.UserRead) (string, error) {
	log := s.logger.With("context", "GenerateToken", "userID", u.ID)
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["sub"] = u.Email
	claims["user_id"] = u.ID.String()
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		log.Error("GenerateToken failed", "error", err)
		return "", err
	}
	log.Debug("GenerateToken successful")
	return signed, nil
}

// CurrentUserEmail extracts the subject email from a verified token.
func (s *Service) CurrentUserEmail(token *jwt.Token) (string, error) {
	if token == nil {
		return "", user.ErrUserUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", user.ErrUserUnauthorized
	}
	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return "", user.ErrUserUnauthorized
	}
	return email, nil
}
