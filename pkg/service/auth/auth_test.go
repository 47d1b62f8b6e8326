package auth_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/imansdev/ackownt/internal/fixtures/mocks"
	"github.com/imansdev/ackownt/pkg/config"
	domainuser "github.com/imansdev/ackownt/pkg/domain/user"
	"github.com/imansdev/ackownt/pkg/dto"
	authsvc "github.com/imansdev/ackownt/pkg/service/auth"
	"github.com/imansdev/ackownt/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const jwtSecret = "test-secret"

func newService() (*authsvc.Service, *mocks.MockUnitOfWork) {
	uow := mocks.NewMockUnitOfWork()
	cfg := &config.Jwt{Secret: jwtSecret, Expiry: time.Hour}
	return authsvc.New(uow, cfg, slog.Default()), uow
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	svc, uow := newService()
	hashed, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)
	stored := &dto.UserRead{
		ID:             uuid.New(),
		Email:          "sara@example.com",
		HashedPassword: hashed,
	}
	uow.Users.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil)

	u, err := svc.Login(context.Background(), stored.Email, "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, stored, u)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()
	svc, uow := newService()
	uow.Users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	u, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	require.ErrorIs(t, err, domainuser.ErrUserUnauthorized)
	assert.Nil(t, u)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	svc, uow := newService()
	hashed, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)
	stored := &dto.UserRead{
		ID:             uuid.New(),
		Email:          "sara@example.com",
		HashedPassword: hashed,
	}
	uow.Users.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil)

	u, err := svc.Login(context.Background(), stored.Email, "not-the-password")
	require.ErrorIs(t, err, domainuser.ErrUserUnauthorized)
	assert.Nil(t, u)
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	t.Parallel()
	svc, _ := newService()
	u := &dto.UserRead{ID: uuid.New(), Email: "sara@example.com"}

	signed, err := svc.GenerateToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	parsed, err := jwt.Parse(signed, func(t *jwt.Token) (any, error) {
		return []byte(jwtSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, u.Email, claims["sub"])
	assert.Equal(t, u.ID.String(), claims["user_id"])
	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.Greater(t, int64(exp), time.Now().Unix())

	email, err := svc.CurrentUserEmail(parsed)
	require.NoError(t, err)
	assert.Equal(t, u.Email, email)
}

func TestCurrentUserEmail_Invalid(t *testing.T) {
	t.Parallel()
	svc, _ := newService()

	_, err := svc.CurrentUserEmail(nil)
	assert.ErrorIs(t, err, domainuser.ErrUserUnauthorized)

	noSubject := jwt.New(jwt.SigningMethodHS256)
	_, err = svc.CurrentUserEmail(noSubject)
	assert.ErrorIs(t, err, domainuser.ErrUserUnauthorized)
}
