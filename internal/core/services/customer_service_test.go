package services_test

import (
	"context"
	"testing"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/apperrors"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	portssvc "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/services"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/services"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

// --- Test Suite ---
type CustomerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCustomerRepository
	service  portssvc.CustomerSvcFacade
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCustomerRepository)
	suite.service = services.NewCustomerService(suite.mockRepo)
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_Success() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{
		Name:        "Alice Nakato",
		Phone:       "0700123456",
		CreditLimit: decimal.NewFromInt(100000),
		CreditUsed:  decimal.Zero,
	}

	suite.mockRepo.On("SaveCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Name == req.Name && c.Phone == req.Phone && c.CustomerID != ""
	})).Return(nil).Once()

	customer, err := suite.service.CreateCustomer(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(customer)
	suite.Equal(req.Name, customer.Name)
	suite.True(customer.CreditLimit.Equal(req.CreditLimit))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_RejectsNegativeCredit() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{
		Name:        "Alice Nakato",
		CreditLimit: decimal.NewFromInt(-1),
	}

	customer, err := suite.service.CreateCustomer(ctx, req)

	suite.Require().Error(err)
	suite.Nil(customer)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCustomer", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestGetCustomerByID_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindCustomerByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	customer, err := suite.service.GetCustomerByID(ctx, "missing")

	suite.Require().Error(err)
	suite.Nil(customer)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_PreservesCreatedAt() {
	ctx := context.Background()
	existing := &domain.Customer{
		CustomerID:  "c-1",
		Name:        "Alice",
		CreditLimit: decimal.NewFromInt(100000),
	}

	suite.mockRepo.On("FindCustomerByID", ctx, "c-1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.CustomerID == "c-1" && c.Name == "Alice N." && c.CreatedAt.Equal(existing.CreatedAt)
	})).Return(nil).Once()

	customer, err := suite.service.UpdateCustomer(ctx, "c-1", dto.UpdateCustomerRequest{
		Name:        "Alice N.",
		CreditLimit: decimal.NewFromInt(150000),
	})

	suite.Require().NoError(err)
	suite.Equal("Alice N.", customer.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
