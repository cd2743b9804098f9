package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/financeflow/financeflow_app/internal/apperrors"
	"github.com/financeflow/financeflow_app/internal/core/domain"
	portssvc "github.com/financeflow/financeflow_app/internal/core/ports/services"
	"github.com/financeflow/financeflow_app/internal/core/services"
	"github.com/financeflow/financeflow_app/internal/dto"
)

type MockTaxTypeRepository struct {
	mock.Mock
}

func (m *MockTaxTypeRepository) FindTaxTypeByID(ctx context.Context, taxTypeID string) (*domain.TaxType, error) {
	args := m.Called(ctx, taxTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxType), args.Error(1)
}

func (m *MockTaxTypeRepository) ListTaxTypesByOwner(ctx context.Context, ownerID string) ([]domain.TaxType, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxType), args.Error(1)
}

func (m *MockTaxTypeRepository) SaveTaxType(ctx context.Context, taxType domain.TaxType) error {
	args := m.Called(ctx, taxType)
	return args.Error(0)
}

func (m *MockTaxTypeRepository) UpdateTaxType(ctx context.Context, taxType domain.TaxType) error {
	args := m.Called(ctx, taxType)
	return args.Error(0)
}

func (m *MockTaxTypeRepository) DeleteTaxType(ctx context.Context, taxTypeID string) error {
	args := m.Called(ctx, taxTypeID)
	return args.Error(0)
}

type TaxTypeServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTaxTypeRepository
	service  portssvc.TaxTypeSvcFacade

	ownerID string
}

func (suite *TaxTypeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTaxTypeRepository)
	suite.service = services.NewTaxTypeService(suite.mockRepo)
	suite.ownerID = uuid.NewString()
}

func (suite *TaxTypeServiceTestSuite) TestCreateTaxType_Success() {
	ctx := context.Background()
	suite.mockRepo.On("SaveTaxType", ctx, mock.AnythingOfType("domain.TaxType")).Return(nil).Once()

	taxType, err := suite.service.CreateTaxType(ctx, suite.ownerID, dto.CreateTaxTypeRequest{
		Title: "Standard VAT",
		Rate:  decimal.NewFromInt(20),
	})

	suite.Require().NoError(err)
	suite.NotEmpty(taxType.TaxTypeID)
	suite.Equal(suite.ownerID, taxType.OwnerID)
	suite.Equal("Standard VAT", taxType.Title)
	suite.True(taxType.Rate.Equal(decimal.NewFromInt(20)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TaxTypeServiceTestSuite) TestCreateTaxType_InvalidRate() {
	tests := []struct {
		name string
		rate decimal.Decimal
	}{
		{"negative rate", decimal.NewFromInt(-1)},
		{"rate above 100", decimal.NewFromInt(101)},
	}
	for _, tc := range tests {
		suite.Run(tc.name, func() {
			_, err := suite.service.CreateTaxType(context.Background(), suite.ownerID, dto.CreateTaxTypeRequest{
				Title: "Broken",
				Rate:  tc.rate,
			})
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTaxType")
}

func (suite *TaxTypeServiceTestSuite) TestCreateTaxType_MissingTitle() {
	_, err := suite.service.CreateTaxType(context.Background(), suite.ownerID, dto.CreateTaxTypeRequest{
		Rate: decimal.NewFromInt(5),
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTaxType")
}

func (suite *TaxTypeServiceTestSuite) TestGetTaxType_ForeignOwnerObscured() {
	ctx := context.Background()
	taxTypeID := uuid.NewString()
	stored := &domain.TaxType{TaxTypeID: taxTypeID, OwnerID: uuid.NewString(), Title: "Reduced"}
	suite.mockRepo.On("FindTaxTypeByID", ctx, taxTypeID).Return(stored, nil).Once()

	_, err := suite.service.GetTaxTypeByID(ctx, taxTypeID, suite.ownerID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.NotErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TaxTypeServiceTestSuite) TestUpdateTaxType_RateRevalidated() {
	ctx := context.Background()
	taxTypeID := uuid.NewString()
	stored := &domain.TaxType{TaxTypeID: taxTypeID, OwnerID: suite.ownerID, Title: "Standard VAT", Rate: decimal.NewFromInt(20)}
	suite.mockRepo.On("FindTaxTypeByID", ctx, taxTypeID).Return(stored, nil).Once()

	badRate := decimal.NewFromInt(120)
	_, err := suite.service.UpdateTaxType(ctx, taxTypeID, suite.ownerID, dto.UpdateTaxTypeRequest{
		Rate: &badRate,
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTaxType")
}

func (suite *TaxTypeServiceTestSuite) TestUpdateTaxType_PartialFields() {
	ctx := context.Background()
	taxTypeID := uuid.NewString()
	stored := &domain.TaxType{TaxTypeID: taxTypeID, OwnerID: suite.ownerID, Title: "Standard VAT", Rate: decimal.NewFromInt(20)}
	suite.mockRepo.On("FindTaxTypeByID", ctx, taxTypeID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateTaxType", ctx, mock.AnythingOfType("domain.TaxType")).Return(nil).Once()

	newTitle := "Standard VAT (2026)"
	updated, err := suite.service.UpdateTaxType(ctx, taxTypeID, suite.ownerID, dto.UpdateTaxTypeRequest{
		Title: &newTitle,
	})

	suite.Require().NoError(err)
	suite.Equal(newTitle, updated.Title)
	suite.True(updated.Rate.Equal(decimal.NewFromInt(20)), "rate survives a title-only update")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TaxTypeServiceTestSuite) TestDeleteTaxType_Success() {
	ctx := context.Background()
	taxTypeID := uuid.NewString()
	stored := &domain.TaxType{TaxTypeID: taxTypeID, OwnerID: suite.ownerID, Title: "Zero rate"}
	suite.mockRepo.On("FindTaxTypeByID", ctx, taxTypeID).Return(stored, nil).Once()
	suite.mockRepo.On("DeleteTaxType", ctx, taxTypeID).Return(nil).Once()

	err := suite.service.DeleteTaxType(ctx, taxTypeID, suite.ownerID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestTaxTypeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaxTypeServiceTestSuite))
}
