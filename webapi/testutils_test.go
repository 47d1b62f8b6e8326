package webapi_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/imansdev/ackownt/internal/fixtures/mocks"
	"github.com/imansdev/ackownt/pkg/app"
	"github.com/imansdev/ackownt/pkg/config"
	domainuser "github.com/imansdev/ackownt/pkg/domain/user"
	"github.com/imansdev/ackownt/pkg/dto"
	"github.com/imansdev/ackownt/pkg/utils"
	"github.com/imansdev/ackownt/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	testEmail    = "sara@example.com"
	testPassword = "password123"
)

func testAppConfig() *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Scheme: "http", Host: "localhost", Port: 3000},
		Log:    &config.Log{},
		DB:     &config.DB{},
		Jwt:    &config.Jwt{Secret: "test-secret", Expiry: time.Hour},
		Account: &config.Account{
			MinBalance:    10000,
			MaxWithdrawal: 500000,
			MinWithdrawal: 0,
			CutOffAge:     18,
		},
		RateLimit: &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
	}
}

// setupTestApp wires the full Fiber application against mock repositories.
func setupTestApp(t *testing.T) (*fiber.App, *app.App, *mocks.MockUnitOfWork) {
	t.Helper()
	uow := mocks.NewMockUnitOfWork()
	a := app.New(&app.Deps{Uow: uow, Logger: slog.Default()}, testAppConfig())
	return webapi.SetupApp(a), a, uow
}

// testUser builds a stored user read with the test password hashed.
func testUser(t *testing.T) *dto.UserRead {
	t.Helper()
	hashed, err := utils.HashPassword(testPassword)
	require.NoError(t, err)
	return &dto.UserRead{
		ID:             uuid.New(),
		Name:           "Sara",
		Surname:        "Mohammadi",
		NationalID:     "1234567890",
		DateOfBirth:    time.Now().AddDate(-25, 0, -1),
		Gender:         domainuser.GenderFemale,
		Email:          testEmail,
		PhoneNumber:    "09123456789",
		MilitaryStatus: domainuser.MilitaryNone,
		HashedPassword: hashed,
		CreatedAt:      time.Now(),
	}
}

// bearerToken issues a signed token for the user via the auth service.
func bearerToken(t *testing.T, a *app.App, u *dto.UserRead) string {
	t.Helper()
	token, err := a.AuthService.GenerateToken(u)
	require.NoError(t, err)
	return token
}
