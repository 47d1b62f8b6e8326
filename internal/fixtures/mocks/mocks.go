// Package mocks provides hand-written testify mocks for the repository
// contracts, used by the service tests.
package mocks

import (
	"context"
	"time"

	"github.com/imansdev/ackownt/pkg/dto"
	"github.com/imansdev/ackownt/pkg/repository"
	accountrepo "github.com/imansdev/ackownt/pkg/repository/account"
	transactionrepo "github.com/imansdev/ackownt/pkg/repository/transaction"
	userrepo "github.com/imansdev/ackownt/pkg/repository/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks the user repository contract.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, create *dto.UserCreate) error {
	args := m.Called(ctx, create)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	args := m.Called(ctx, id)
	return userReadOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*dto.UserRead, error) {
	args := m.Called(ctx, email)
	return userReadOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*dto.UserRead, error) {
	args := m.Called(ctx, phoneNumber)
	return userReadOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) GetByNationalID(ctx context.Context, nationalID string) (*dto.UserRead, error) {
	args := m.Called(ctx, nationalID)
	return userReadOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id uuid.UUID, update *dto.UserUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func userReadOrNil(v any) *dto.UserRead {
	if v == nil {
		return nil
	}
	return v.(*dto.UserRead)
}

// MockAccountRepository mocks the account repository contract.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, create *dto.AccountCreate) error {
	args := m.Called(ctx, create)
	return args.Error(0)
}

func (m *MockAccountRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*dto.AccountRead, error) {
	args := m.Called(ctx, userID)
	return accountReadOrNil(args.Get(0)), args.Error(1)
}

func (m *MockAccountRepository) GetByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*dto.AccountRead, error) {
	args := m.Called(ctx, userID)
	return accountReadOrNil(args.Get(0)), args.Error(1)
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, id uuid.UUID, balance int64) error {
	args := m.Called(ctx, id, balance)
	return args.Error(0)
}

func accountReadOrNil(v any) *dto.AccountRead {
	if v == nil {
		return nil
	}
	return v.(*dto.AccountRead)
}

// MockTransactionRepository mocks the transaction repository contract.
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, create *dto.TransactionCreate) error {
	args := m.Called(ctx, create)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*dto.TransactionRead, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]*dto.TransactionRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransactionRepository) SumDeductionsOnDate(ctx context.Context, userID uuid.UUID, date time.Time) (int64, error) {
	args := m.Called(ctx, userID, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) ExistsByTrackingNumber(ctx context.Context, trackingNumber string) (bool, error) {
	args := m.Called(ctx, trackingNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockUnitOfWork is a unit of work that executes the given function
// directly against itself, handing out the mock repositories.
type MockUnitOfWork struct {
	Users        *MockUserRepository
	Accounts     *MockAccountRepository
	Transactions *MockTransactionRepository
}

// NewMockUnitOfWork creates a MockUnitOfWork with fresh mock repositories.
func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		Users:        &MockUserRepository{},
		Accounts:     &MockAccountRepository{},
		Transactions: &MockTransactionRepository{},
	}
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return fn(m)
}

func (m *MockUnitOfWork) UserRepository() (userrepo.Repository, error) {
	return m.Users, nil
}

func (m *MockUnitOfWork) AccountRepository() (accountrepo.Repository, error) {
	return m.Accounts, nil
}

func (m *MockUnitOfWork) TransactionRepository() (transactionrepo.Repository, error) {
	return m.Transactions, nil
}

var _ repository.UnitOfWork = (*MockUnitOfWork)(nil)
var _ userrepo.Repository = (*MockUserRepository)(nil)
var _ accountrepo.Repository = (*MockAccountRepository)(nil)
var _ transactionrepo.Repository = (*MockTransactionRepository)(nil)
