package account_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/imansdev/ackownt/internal/fixtures/mocks"
	"github.com/imansdev/ackownt/pkg/config"
	"github.com/imansdev/ackownt/pkg/domain"
	domainaccount "github.com/imansdev/ackownt/pkg/domain/account"
	domainuser "github.com/imansdev/ackownt/pkg/domain/user"
	"github.com/imansdev/ackownt/pkg/dto"
	accountsvc "github.com/imansdev/ackownt/pkg/service/account"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testEmail = "user@example.com"

func testConfig() *config.Account {
	return &config.Account{
		MinBalance:    10000,
		MaxWithdrawal: 500000,
		MinWithdrawal: 0,
		CutOffAge:     18,
	}
}

func newServiceWithMocks() (*accountsvc.Service, *mocks.MockUnitOfWork, *dto.UserRead) {
	uow := mocks.NewMockUnitOfWork()
	svc := accountsvc.New(uow, testConfig(), slog.Default())
	u := &dto.UserRead{ID: uuid.New(), Email: testEmail}
	return svc, uow, u
}

func expectNoTrackingCollision(uow *mocks.MockUnitOfWork) {
	uow.Transactions.On("ExistsByTrackingNumber", mock.Anything, mock.Anything).
		Return(false, nil)
	uow.Transactions.On("Create", mock.Anything, mock.Anything).Return(nil)
}

func TestCreateAccount_InitialDepositTooLow(t *testing.T) {
	t.Parallel()
	svc, _, _ := newServiceWithMocks()

	for _, amount := range []int64{-1, 0, 9999, 10000} {
		tx, err := svc.CreateAccount(context.Background(), testEmail, amount)
		require.Error(t, err)
		assert.Nil(t, tx)
		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	}
}

func TestCreateAccount_Success(t *testing.T) {
	t.Parallel()
	svc, uow, u := newServiceWithMocks()
	uow.Users.On("GetByEmail", mock.Anything, testEmail).Return(u, nil)
	uow.Accounts.On("GetByUserID", mock.Anything, u.ID).Return(nil, nil)
	uow.Accounts.On("Create", mock.Anything, mock.MatchedBy(func(c *dto.AccountCreate) bool {
		return c.UserID == u.ID && c.Balance == 20000 && len(c.AccountNumber) == 10
	})).Return(nil)
	expectNoTrackingCollision(uow)

	tx, err := svc.CreateAccount(context.Background(), testEmail, 20000)
	require.NoError(t, err)
	assert.Equal(t, domainaccount.TypeCharge, tx.Type)
	assert.Equal(t, domainaccount.StatusSuccessful, tx.Status)
	assert.EqualValues(t, 20000, tx.Amount)
	assert.EqualValues(t, 10000, tx.WithdrawalBalance)
	assert.Len(t, tx.TrackingNumber, 6)
	assert.Equal(t, domainaccount.ChargingSuccessful.Message(), tx.Description)
}

func TestCreateAccount_MinBalancePlusOne(t *testing.T) {
	t.Parallel()
	svc, uow, u := newServiceWithMocks()
	uow.Users.On("GetByEmail", mock.Anything, testEmail).Return(u, nil)
	uow.Accounts.On("GetByUserID", mock.Anything, u.ID).Return(nil, nil)
	uow.Accounts.On("Create", mock.Anything, mock.Anything).Return(nil)
	expectNoTrackingCollision(uow)

	tx, err := svc.CreateAccount(context.Background(), testEmail, 10001)
	require.NoError(t, err)
	assert.EqualValues(t, 10001, tx.Amount)
	assert.EqualValues(t, 1, tx.WithdrawalBalance)
}

func TestCreateAccount_AlreadyExists(t *testing.T) {
	t.Parallel()
	svc, uow, u := newServiceWithMocks()
	uow.Users.On("GetByEmail", mock.Anything, testEmail).Return(u, nil)
	uow.Accounts.On("GetByUserID", mock.Anything, u.ID).
		Return(&dto.AccountRead{ID: uuid.New(), UserID: u.ID}, nil)

	tx, err := svc.CreateAccount(context.Background(), testEmail, 20000)
	require.Error(t, err)
	assert.Nil(t, tx)
	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCreateAccount_UserNotFound(t *testing.T) {
	t.Parallel()
	svc, uow, _ := newServiceWithMocks()
	uow.Users.On("GetByEmail", mock.Anything, testEmail).Return(nil, nil)

	tx, err := svc.CreateAccount(context.Background(), testEmail, 20000)
	require.ErrorIs(t, err, domainuser.ErrUserNotFound)
	assert.Nil(t, tx)
}

func TestCharge_NonPositiveAmount(t *testing.T) {
	t.Parallel()
	svc, _, _ := newServiceWithMocks()

	for _, amount := range []int64{-500, 0} {
		tx, err := svc.Charge(context.Background(), testEmail, amount)
		require.Error(t, err)
		assert.Nil(t, tx)
	}
}

func TestCharge_Success(t *testing.T) {
	t.Parallel()
	svc, uow, u := newServiceWithMocks()
	accountID := uuid.New()
	uow.Users.On("GetByEmail", mock.Anything, testEmail).Return(u, nil)
	uow.Accounts.On("GetByUserIDForUpdate", mock.Anything, u.ID).
		Return(&dto.AccountRead{ID: accountID, UserID: u.ID, Balance: 15000}, nil)
	uow.Accounts.On("UpdateBalance", mock.Anything, accountID, int64(18000)).Return(nil)
	expectNoTrackingCollision(uow)

	tx, err := svc.Charge(context.Background(), testEmail, 3000)
	require.NoError(t, err)
	assert.Equal(t, domainaccount.TypeCharge, tx.Type)
	assert.EqualValues(t, 3000, tx.Amount)
	assert.EqualValues(t, 8000, tx.WithdrawalBalance)
}

func TestCharge_NoAccount(t *testing.T) {
	t.Parallel()
	svc, uow, u := newServiceWithMocks()
	uow.Users.On("GetByEmail", mock.Anything, testEmail).Return(u, nil)
	uow.Accounts.On("GetByUserIDForUpdate", mock.Anything, u.ID).Return(nil, nil)

	tx, err := svc.Charge(context.Background(), testEmail, 3000)
	require.ErrorIs(t, err, domainaccount.ErrAccountNotFound)
	assert.Nil(t, tx)
}

func TestDeduct_AmountOutOfBounds(t *testing.T) {
	t.Parallel()
	svc, _, _ := newServiceWithMocks()

	for _, amount := range []int64{-1, 0, 500000, 600000} {
		tx, err := svc.Deduct(context.Background(), testEmail, amount)
		require.Error(t, err, "amount %d", amount)
		assert.Nil(t, tx)
	}
}

func TestDeduct_Success(t *testing.T) {
	t.Parallel()
	svc, uow, u := newServiceWithMocks()
	accountID := uuid.New()
	uow.Users.On("GetByEmail", mock.Anything, testEmail).Return(u, nil)
	uow.Accounts.On("GetByUserIDForUpdate", mock.Anything, u.ID).
		Return(&dto.AccountRead{ID: accountID, UserID: u.ID, Balance: 20000}, nil)
	uow.Transactions.On("SumDeductionsOnDate", mock.Anything, u.ID, mock.Anything).
		Return(int64(0), nil)
	uow.Accounts.On("UpdateBalance", mock.Anything, accountID, int64(15000)).Return(nil)
	expectNoTrackingCollision(uow)

	tx, err := svc.Deduct(context.Background(), testEmail, 5000)
	require.NoError(t, err)
	assert.Equal(t, domainaccount.TypeDeduction, tx.Type)
	assert.EqualValues(t, 5000, tx.Amount)
	assert.EqualValues(t, 5000, tx.WithdrawalBalance)
	assert.Equal(t, domainaccount.DeductionSuccessful.Message(), tx.Description)
}

func TestDeduct_InsufficientWithdrawableBalance(t *testing.T) {
	t.Parallel()
	svc, uow, u := newServiceWithMocks()
	uow.Users.On("GetByEmail", mock.Anything, testEmail).Return(u, nil)
	// Withdrawable balance is 15000 - 10000 = 5000.
	uow.Accounts.On("GetByUserIDForUpdate", mock.Anything, u.ID).
		Return(&dto.AccountRead{ID: uuid.New(), UserID: u.ID, Balance: 15000}, nil)
	uow.Transactions.On("SumDeductionsOnDate", mock.Anything, u.ID, mock.Anything).
		Return(int64(0), nil)

	tx, err := svc.Deduct(context.Background(), testEmail, 5001)
	require.Error(t, err)
	assert.Nil(t, tx)
	assert.Contains(t, err.Error(), "Insufficient balance")
}

func TestDeduct_DailyCapExceeded(t *testing.T) {
	t.Parallel()
	svc, uow, u := newServiceWithMocks()
	// Balance is ample; the daily cap alone must reject the deduction.
	uow.Users.On("GetByEmail", mock.Anything, testEmail).Return(u, nil)
	uow.Accounts.On("GetByUserIDForUpdate", mock.Anything, u.ID).
		Return(&dto.AccountRead{ID: uuid.New(), UserID: u.ID, Balance: 10000000}, nil)
	uow.Transactions.On("SumDeductionsOnDate", mock.Anything, u.ID, mock.Anything).
		Return(int64(450000), nil)

	tx, err := svc.Deduct(context.Background(), testEmail, 60000)
	require.Error(t, err)
	assert.Nil(t, tx)
	assert.Contains(t, err.Error(), "Total daily deductions")
}

func TestDeduct_ChargesDoNotCountTowardCap(t *testing.T) {
	t.Parallel()
	svc, uow, u := newServiceWithMocks()
	accountID := uuid.New()
	uow.Users.On("GetByEmail", mock.Anything, testEmail).Return(u, nil)
	uow.Accounts.On("GetByUserIDForUpdate", mock.Anything, u.ID).
		Return(&dto.AccountRead{ID: accountID, UserID: u.ID, Balance: 1000000}, nil)
	// The accumulator only reports deductions; 440000 leaves room for 60000.
	uow.Transactions.On("SumDeductionsOnDate", mock.Anything, u.ID, mock.Anything).
		Return(int64(440000), nil)
	uow.Accounts.On("UpdateBalance", mock.Anything, accountID, int64(940000)).Return(nil)
	expectNoTrackingCollision(uow)

	tx, err := svc.Deduct(context.Background(), testEmail, 60000)
	require.NoError(t, err)
	assert.EqualValues(t, 60000, tx.Amount)
}

func TestDeduct_TrackingNumberCollisionRetries(t *testing.T) {
	t.Parallel()
	svc, uow, u := newServiceWithMocks()
	accountID := uuid.New()
	uow.Users.On("GetByEmail", mock.Anything, testEmail).Return(u, nil)
	uow.Accounts.On("GetByUserIDForUpdate", mock.Anything, u.ID).
		Return(&dto.AccountRead{ID: accountID, UserID: u.ID, Balance: 20000}, nil)
	uow.Transactions.On("SumDeductionsOnDate", mock.Anything, u.ID, mock.Anything).
		Return(int64(0), nil)
	uow.Accounts.On("UpdateBalance", mock.Anything, accountID, int64(15000)).Return(nil)
	// First generated number collides, the second one is free.
	uow.Transactions.On("ExistsByTrackingNumber", mock.Anything, mock.Anything).
		Return(true, nil).Once()
	uow.Transactions.On("ExistsByTrackingNumber", mock.Anything, mock.Anything).
		Return(false, nil).Once()
	uow.Transactions.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	tx, err := svc.Deduct(context.Background(), testEmail, 5000)
	require.NoError(t, err)
	require.NotNil(t, tx)
	uow.Transactions.AssertNumberOfCalls(t, "ExistsByTrackingNumber", 2)
	uow.Transactions.AssertNumberOfCalls(t, "Create", 1)
}

// Replays the ledger scenario: create with 20000, deduct 5000, then a
// 5001 deduction must fail because only 5000 is withdrawable.
func TestLedgerScenario(t *testing.T) {
	t.Parallel()
	svc, uow, u := newServiceWithMocks()
	accountID := uuid.New()
	uow.Users.On("GetByEmail", mock.Anything, testEmail).Return(u, nil)
	uow.Accounts.On("GetByUserID", mock.Anything, u.ID).Return(nil, nil).Once()
	uow.Accounts.On("Create", mock.Anything, mock.Anything).Return(nil)
	expectNoTrackingCollision(uow)

	created, err := svc.CreateAccount(context.Background(), testEmail, 20000)
	require.NoError(t, err)
	assert.Equal(t, domainaccount.TypeCharge, created.Type)
	assert.EqualValues(t, 20000, created.Amount)
	assert.EqualValues(t, 10000, created.WithdrawalBalance)

	uow.Accounts.On("GetByUserIDForUpdate", mock.Anything, u.ID).
		Return(&dto.AccountRead{ID: accountID, UserID: u.ID, Balance: 20000}, nil).Once()
	uow.Transactions.On("SumDeductionsOnDate", mock.Anything, u.ID, mock.Anything).
		Return(int64(0), nil).Once()
	uow.Accounts.On("UpdateBalance", mock.Anything, accountID, int64(15000)).Return(nil)

	first, err := svc.Deduct(context.Background(), testEmail, 5000)
	require.NoError(t, err)
	assert.EqualValues(t, 5000, first.WithdrawalBalance)

	uow.Accounts.On("GetByUserIDForUpdate", mock.Anything, u.ID).
		Return(&dto.AccountRead{ID: accountID, UserID: u.ID, Balance: 15000}, nil).Once()
	uow.Transactions.On("SumDeductionsOnDate", mock.Anything, u.ID, mock.Anything).
		Return(int64(5000), nil).Once()

	rejected, err := svc.Deduct(context.Background(), testEmail, 5001)
	require.Error(t, err)
	assert.Nil(t, rejected)
	assert.Contains(t, err.Error(), "Insufficient balance")
}

func TestGetAccountAndTransactions(t *testing.T) {
	t.Parallel()
	svc, uow, u := newServiceWithMocks()
	a := &dto.AccountRead{ID: uuid.New(), UserID: u.ID, Balance: 15000, AccountNumber: "0123456789"}
	history := []*dto.TransactionRead{
		{ID: uuid.New(), UserID: u.ID, Amount: 5000},
		{ID: uuid.New(), UserID: u.ID, Amount: 20000},
	}
	uow.Users.On("GetByEmail", mock.Anything, testEmail).Return(u, nil)
	uow.Accounts.On("GetByUserID", mock.Anything, u.ID).Return(a, nil)
	uow.Transactions.On("ListByUserID", mock.Anything, u.ID).Return(history, nil)

	statement, err := svc.GetAccountAndTransactions(context.Background(), testEmail)
	require.NoError(t, err)
	assert.Equal(t, a, statement.Account)
	assert.Len(t, statement.Transactions, 2)
}

func TestGetAccountAndTransactions_NoAccount(t *testing.T) {
	t.Parallel()
	svc, uow, u := newServiceWithMocks()
	uow.Users.On("GetByEmail", mock.Anything, testEmail).Return(u, nil)
	uow.Accounts.On("GetByUserID", mock.Anything, u.ID).Return(nil, nil)

	statement, err := svc.GetAccountAndTransactions(context.Background(), testEmail)
	require.ErrorIs(t, err, domainaccount.ErrAccountNotFound)
	assert.Nil(t, statement)
}
