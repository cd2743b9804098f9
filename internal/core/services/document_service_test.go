package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

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

// --- Mock DocumentRepository ---
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) FindDocumentByID(ctx context.Context, docType domain.DocumentType, documentID string) (*domain.Document, error) {
	args := m.Called(ctx, docType, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) FindLineItemsByDocumentID(ctx context.Context, documentID string) ([]domain.LineItem, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineItem), args.Error(1)
}

func (m *MockDocumentRepository) ListDocumentsByOwner(ctx context.Context, docType domain.DocumentType, ownerID string, limit int, nextToken *string) ([]domain.Document, *string, error) {
	args := m.Called(ctx, docType, ownerID, limit, nextToken)
	var docs []domain.Document
	if args.Get(0) != nil {
		docs = args.Get(0).([]domain.Document)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return docs, token, args.Error(2)
}

func (m *MockDocumentRepository) FindMaxDocumentNumber(ctx context.Context, docType domain.DocumentType) (*string, error) {
	args := m.Called(ctx, docType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func (m *MockDocumentRepository) CountDocumentsByCustomer(ctx context.Context, customerID string) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDocumentRepository) SaveDocument(ctx context.Context, doc domain.Document, lines []domain.LineItem) error {
	args := m.Called(ctx, doc, lines)
	return args.Error(0)
}

func (m *MockDocumentRepository) UpdateDocument(ctx context.Context, doc domain.Document, lines []domain.LineItem, expectedStatus domain.DocumentStatus) error {
	args := m.Called(ctx, doc, lines, expectedStatus)
	return args.Error(0)
}

func (m *MockDocumentRepository) DeleteDocument(ctx context.Context, docType domain.DocumentType, documentID string) error {
	args := m.Called(ctx, docType, documentID)
	return args.Error(0)
}

func (m *MockDocumentRepository) NextDocumentSequence(ctx context.Context, docType domain.DocumentType) (int64, error) {
	args := m.Called(ctx, docType)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomersByOwner(ctx context.Context, ownerID string) ([]domain.Customer, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

// --- Test Suite ---
type DocumentServiceTestSuite struct {
	suite.Suite
	mockDocRepo  *MockDocumentRepository
	mockCustRepo *MockCustomerRepository
	service      portssvc.DocumentSvcFacade

	ownerID    string
	customerID string
}

func (suite *DocumentServiceTestSuite) SetupTest() {
	suite.mockDocRepo = new(MockDocumentRepository)
	suite.mockCustRepo = new(MockCustomerRepository)
	suite.service = services.NewDocumentService(suite.mockDocRepo, suite.mockCustRepo)
	suite.ownerID = uuid.NewString()
	suite.customerID = uuid.NewString()
}

func (suite *DocumentServiceTestSuite) ownedCustomer() *domain.Customer {
	return &domain.Customer{CustomerID: suite.customerID, OwnerID: suite.ownerID, Name: "Acme Corp"}
}

func (suite *DocumentServiceTestSuite) createRequest() dto.CreateDocumentRequest {
	return dto.CreateDocumentRequest{
		CustomerID: suite.customerID,
		DueDate:    time.Now().UTC().Add(30 * 24 * time.Hour),
		LineItems: []dto.LineItemInput{
			{Description: "Consulting", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(150), TaxRate: decimal.NewFromInt(20)},
			{Description: "Travel", Quantity: decimal.NewFromInt(5), UnitPrice: decimal.NewFromInt(50), TaxRate: decimal.Zero},
		},
	}
}

// --- CreateDocument ---

func (suite *DocumentServiceTestSuite) TestCreateDocument_Success() {
	ctx := context.Background()
	req := suite.createRequest()

	suite.mockCustRepo.On("FindCustomerByID", ctx, suite.customerID).Return(suite.ownedCustomer(), nil).Once()
	suite.mockDocRepo.On("NextDocumentSequence", ctx, domain.Invoice).Return(int64(7), nil).Once()
	suite.mockDocRepo.On("SaveDocument", ctx, mock.MatchedBy(func(d domain.Document) bool {
		return d.DocType == domain.Invoice &&
			d.Status == domain.StatusDraft &&
			d.Number == "INV-00007" &&
			d.OwnerID == suite.ownerID &&
			d.Subtotal.Equal(decimal.NewFromInt(1750)) &&
			d.TaxAmount.Equal(decimal.NewFromInt(300)) &&
			d.Total.Equal(decimal.NewFromInt(2050))
	}), mock.MatchedBy(func(lines []domain.LineItem) bool {
		return len(lines) == 2 && lines[0].Position == 0 && lines[1].Position == 1 &&
			lines[0].LineTotal.Equal(decimal.NewFromInt(1800)) &&
			lines[1].LineTotal.Equal(decimal.NewFromInt(250))
	})).Return(nil).Once()

	doc, err := suite.service.CreateDocument(ctx, domain.Invoice, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(doc)
	suite.Equal("INV-00007", doc.Number)
	suite.Equal(domain.StatusDraft, doc.Status)
	suite.Len(doc.LineItems, 2)
	suite.mockDocRepo.AssertExpectations(suite.T())
	suite.mockCustRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestCreateDocument_ForeignCustomer() {
	ctx := context.Background()
	req := suite.createRequest()
	foreign := &domain.Customer{CustomerID: suite.customerID, OwnerID: uuid.NewString()}

	suite.mockCustRepo.On("FindCustomerByID", ctx, suite.customerID).Return(foreign, nil).Once()

	doc, err := suite.service.CreateDocument(ctx, domain.Invoice, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(doc)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockDocRepo.AssertNotCalled(suite.T(), "SaveDocument", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestCreateDocument_UnknownCustomer() {
	ctx := context.Background()
	req := suite.createRequest()

	suite.mockCustRepo.On("FindCustomerByID", ctx, suite.customerID).Return(nil, apperrors.ErrNotFound).Once()

	doc, err := suite.service.CreateDocument(ctx, domain.Estimate, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(doc)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *DocumentServiceTestSuite) TestCreateDocument_NoLineItems() {
	ctx := context.Background()
	req := suite.createRequest()
	req.LineItems = nil

	doc, err := suite.service.CreateDocument(ctx, domain.Invoice, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(doc)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCustRepo.AssertNotCalled(suite.T(), "FindCustomerByID", mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestCreateDocument_InvalidLine() {
	ctx := context.Background()
	req := suite.createRequest()
	req.LineItems[0].Quantity = decimal.Zero

	suite.mockCustRepo.On("FindCustomerByID", ctx, suite.customerID).Return(suite.ownedCustomer(), nil).Once()

	doc, err := suite.service.CreateDocument(ctx, domain.Invoice, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(doc)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDocRepo.AssertNotCalled(suite.T(), "NextDocumentSequence", mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestCreateDocument_RetriesOnceOnDuplicateNumber() {
	ctx := context.Background()
	req := suite.createRequest()

	suite.mockCustRepo.On("FindCustomerByID", ctx, suite.customerID).Return(suite.ownedCustomer(), nil).Once()
	suite.mockDocRepo.On("NextDocumentSequence", ctx, domain.Estimate).Return(int64(3), nil).Once()
	suite.mockDocRepo.On("NextDocumentSequence", ctx, domain.Estimate).Return(int64(4), nil).Once()
	suite.mockDocRepo.On("SaveDocument", ctx, mock.MatchedBy(func(d domain.Document) bool {
		return d.Number == "EST-00003"
	}), mock.Anything).Return(apperrors.ErrDuplicate).Once()
	suite.mockDocRepo.On("SaveDocument", ctx, mock.MatchedBy(func(d domain.Document) bool {
		return d.Number == "EST-00004"
	}), mock.Anything).Return(nil).Once()

	doc, err := suite.service.CreateDocument(ctx, domain.Estimate, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Equal("EST-00004", doc.Number)
	suite.mockDocRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestCreateDocument_ConflictAfterSecondDuplicate() {
	ctx := context.Background()
	req := suite.createRequest()

	suite.mockCustRepo.On("FindCustomerByID", ctx, suite.customerID).Return(suite.ownedCustomer(), nil).Once()
	suite.mockDocRepo.On("NextDocumentSequence", ctx, domain.Invoice).Return(int64(9), nil).Once()
	suite.mockDocRepo.On("NextDocumentSequence", ctx, domain.Invoice).Return(int64(10), nil).Once()
	suite.mockDocRepo.On("SaveDocument", ctx, mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate).Twice()

	doc, err := suite.service.CreateDocument(ctx, domain.Invoice, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(doc)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockDocRepo.AssertExpectations(suite.T())
}

// --- GetDocumentByID ---

func (suite *DocumentServiceTestSuite) TestGetDocumentByID_Success() {
	ctx := context.Background()
	documentID := uuid.NewString()
	stored := &domain.Document{DocumentID: documentID, DocType: domain.Invoice, OwnerID: suite.ownerID}
	lines := []domain.LineItem{{LineItemID: uuid.NewString(), DocumentID: documentID, Position: 0}}

	suite.mockDocRepo.On("FindDocumentByID", ctx, domain.Invoice, documentID).Return(stored, nil).Once()
	suite.mockDocRepo.On("FindLineItemsByDocumentID", ctx, documentID).Return(lines, nil).Once()

	doc, err := suite.service.GetDocumentByID(ctx, domain.Invoice, documentID, suite.ownerID)

	suite.Require().NoError(err)
	suite.Equal(documentID, doc.DocumentID)
	suite.Len(doc.LineItems, 1)
	suite.mockDocRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestGetDocumentByID_ForeignOwnerObscured() {
	ctx := context.Background()
	documentID := uuid.NewString()
	stored := &domain.Document{DocumentID: documentID, DocType: domain.Invoice, OwnerID: uuid.NewString()}

	suite.mockDocRepo.On("FindDocumentByID", ctx, domain.Invoice, documentID).Return(stored, nil).Once()

	doc, err := suite.service.GetDocumentByID(ctx, domain.Invoice, documentID, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(doc)
	// Existence of another owner's document is never confirmed
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.NotErrorIs(err, apperrors.ErrForbidden)
	suite.mockDocRepo.AssertNotCalled(suite.T(), "FindLineItemsByDocumentID", mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestGetDocumentByID_UnscopedActorSeesAll() {
	ctx := context.Background()
	documentID := uuid.NewString()
	stored := &domain.Document{DocumentID: documentID, DocType: domain.Estimate, OwnerID: uuid.NewString()}

	suite.mockDocRepo.On("FindDocumentByID", ctx, domain.Estimate, documentID).Return(stored, nil).Once()
	suite.mockDocRepo.On("FindLineItemsByDocumentID", ctx, documentID).Return([]domain.LineItem{}, nil).Once()

	doc, err := suite.service.GetDocumentByID(ctx, domain.Estimate, documentID, "")

	suite.Require().NoError(err)
	suite.Equal(documentID, doc.DocumentID)
}

// --- UpdateDocument ---

func (suite *DocumentServiceTestSuite) updateRequest(status domain.DocumentStatus) dto.UpdateDocumentRequest {
	return dto.UpdateDocumentRequest{
		CustomerID: suite.customerID,
		DueDate:    time.Now().UTC().Add(14 * 24 * time.Hour),
		Status:     status,
		LineItems: []dto.LineItemInput{
			{Description: "Retainer", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(500), TaxRate: decimal.NewFromInt(10)},
		},
	}
}

func (suite *DocumentServiceTestSuite) TestUpdateDocument_Success() {
	ctx := context.Background()
	documentID := uuid.NewString()
	stored := &domain.Document{
		DocumentID: documentID,
		DocType:    domain.Invoice,
		OwnerID:    suite.ownerID,
		CustomerID: suite.customerID,
		Status:     domain.StatusDraft,
	}
	req := suite.updateRequest(domain.StatusPending)

	suite.mockDocRepo.On("FindDocumentByID", ctx, domain.Invoice, documentID).Return(stored, nil).Once()
	suite.mockCustRepo.On("FindCustomerByID", ctx, suite.customerID).Return(suite.ownedCustomer(), nil).Once()
	suite.mockDocRepo.On("UpdateDocument", ctx, mock.MatchedBy(func(d domain.Document) bool {
		return d.Status == domain.StatusPending &&
			d.Subtotal.Equal(decimal.NewFromInt(500)) &&
			d.TaxAmount.Equal(decimal.NewFromInt(50)) &&
			d.Total.Equal(decimal.NewFromInt(550))
	}), mock.MatchedBy(func(lines []domain.LineItem) bool {
		// Stored lines are replaced wholesale by the submitted set
		return len(lines) == 1 && lines[0].Description == "Retainer"
	}), domain.StatusDraft).Return(nil).Once()

	doc, err := suite.service.UpdateDocument(ctx, domain.Invoice, documentID, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, doc.Status)
	suite.Len(doc.LineItems, 1)
	suite.mockDocRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestUpdateDocument_SameStatusAllowed() {
	ctx := context.Background()
	documentID := uuid.NewString()
	stored := &domain.Document{
		DocumentID: documentID,
		DocType:    domain.Estimate,
		OwnerID:    suite.ownerID,
		CustomerID: suite.customerID,
		Status:     domain.StatusApproved,
	}
	req := suite.updateRequest(domain.StatusApproved)

	suite.mockDocRepo.On("FindDocumentByID", ctx, domain.Estimate, documentID).Return(stored, nil).Once()
	suite.mockCustRepo.On("FindCustomerByID", ctx, suite.customerID).Return(suite.ownedCustomer(), nil).Once()
	suite.mockDocRepo.On("UpdateDocument", ctx, mock.Anything, mock.Anything, domain.StatusApproved).Return(nil).Once()

	doc, err := suite.service.UpdateDocument(ctx, domain.Estimate, documentID, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, doc.Status)
}

func (suite *DocumentServiceTestSuite) TestUpdateDocument_InvalidTransition() {
	ctx := context.Background()
	documentID := uuid.NewString()
	stored := &domain.Document{
		DocumentID: documentID,
		DocType:    domain.Estimate,
		OwnerID:    suite.ownerID,
		CustomerID: suite.customerID,
		Status:     domain.StatusCompleted,
	}
	req := suite.updateRequest(domain.StatusDraft)

	suite.mockDocRepo.On("FindDocumentByID", ctx, domain.Estimate, documentID).Return(stored, nil).Once()
	suite.mockCustRepo.On("FindCustomerByID", ctx, suite.customerID).Return(suite.ownedCustomer(), nil).Once()

	doc, err := suite.service.UpdateDocument(ctx, domain.Estimate, documentID, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(doc)
	var transitionErr *apperrors.TransitionError
	suite.Require().True(errors.As(err, &transitionErr))
	suite.Empty(transitionErr.ValidNext)
	suite.mockDocRepo.AssertNotCalled(suite.T(), "UpdateDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestUpdateDocument_LostRaceYieldsConflict() {
	ctx := context.Background()
	documentID := uuid.NewString()
	stored := &domain.Document{
		DocumentID: documentID,
		DocType:    domain.Invoice,
		OwnerID:    suite.ownerID,
		CustomerID: suite.customerID,
		Status:     domain.StatusOpen,
	}
	req := suite.updateRequest(domain.StatusPaid)

	suite.mockDocRepo.On("FindDocumentByID", ctx, domain.Invoice, documentID).Return(stored, nil).Once()
	suite.mockCustRepo.On("FindCustomerByID", ctx, suite.customerID).Return(suite.ownedCustomer(), nil).Once()
	suite.mockDocRepo.On("UpdateDocument", ctx, mock.Anything, mock.Anything, domain.StatusOpen).Return(apperrors.ErrConflict).Once()

	doc, err := suite.service.UpdateDocument(ctx, domain.Invoice, documentID, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(doc)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *DocumentServiceTestSuite) TestUpdateDocument_ForeignOwnerObscured() {
	ctx := context.Background()
	documentID := uuid.NewString()
	stored := &domain.Document{
		DocumentID: documentID,
		DocType:    domain.Invoice,
		OwnerID:    uuid.NewString(),
		CustomerID: suite.customerID,
		Status:     domain.StatusDraft,
	}
	req := suite.updateRequest(domain.StatusPending)

	suite.mockDocRepo.On("FindDocumentByID", ctx, domain.Invoice, documentID).Return(stored, nil).Once()

	doc, err := suite.service.UpdateDocument(ctx, domain.Invoice, documentID, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(doc)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- DeleteDocument ---

func (suite *DocumentServiceTestSuite) TestDeleteDocument_Success() {
	ctx := context.Background()
	documentID := uuid.NewString()
	stored := &domain.Document{DocumentID: documentID, DocType: domain.Estimate, OwnerID: suite.ownerID}

	suite.mockDocRepo.On("FindDocumentByID", ctx, domain.Estimate, documentID).Return(stored, nil).Once()
	suite.mockDocRepo.On("DeleteDocument", ctx, domain.Estimate, documentID).Return(nil).Once()

	err := suite.service.DeleteDocument(ctx, domain.Estimate, documentID, suite.ownerID)

	suite.Require().NoError(err)
	suite.mockDocRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestDeleteDocument_ForeignOwnerObscured() {
	ctx := context.Background()
	documentID := uuid.NewString()
	stored := &domain.Document{DocumentID: documentID, DocType: domain.Estimate, OwnerID: uuid.NewString()}

	suite.mockDocRepo.On("FindDocumentByID", ctx, domain.Estimate, documentID).Return(stored, nil).Once()

	err := suite.service.DeleteDocument(ctx, domain.Estimate, documentID, suite.ownerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockDocRepo.AssertNotCalled(suite.T(), "DeleteDocument", mock.Anything, mock.Anything, mock.Anything)
}

// --- ListDocuments ---

func (suite *DocumentServiceTestSuite) TestListDocuments_Success() {
	ctx := context.Background()
	token := "next-token"
	stored := []domain.Document{
		{DocumentID: uuid.NewString(), DocType: domain.Invoice, OwnerID: suite.ownerID, Number: "INV-00002"},
		{DocumentID: uuid.NewString(), DocType: domain.Invoice, OwnerID: suite.ownerID, Number: "INV-00001"},
	}

	suite.mockDocRepo.On("ListDocumentsByOwner", ctx, domain.Invoice, suite.ownerID, 10, (*string)(nil)).Return(stored, &token, nil).Once()

	resp, err := suite.service.ListDocuments(ctx, domain.Invoice, suite.ownerID, dto.ListDocumentsParams{Limit: 10})

	suite.Require().NoError(err)
	suite.Len(resp.Documents, 2)
	suite.Equal("INV-00002", resp.Documents[0].Number)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(token, *resp.NextToken)
}

// --- ValidNextStatuses ---

func (suite *DocumentServiceTestSuite) TestValidNextStatuses() {
	next := suite.service.ValidNextStatuses(domain.Invoice, domain.StatusDraft)
	suite.ElementsMatch([]domain.DocumentStatus{domain.StatusPending, domain.StatusUnpaid, domain.StatusVoid}, next)

	suite.Empty(suite.service.ValidNextStatuses(domain.Estimate, domain.StatusCancelled))
}

func TestDocumentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}
