package pgsql_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/financeflow/financeflow_app/internal/apperrors"
	"github.com/financeflow/financeflow_app/internal/core/domain"
	portsrepo "github.com/financeflow/financeflow_app/internal/core/ports/repositories"
	"github.com/financeflow/financeflow_app/internal/repositories/database/pgsql"
	"github.com/financeflow/financeflow_app/internal/utils/numbering"
	"github.com/financeflow/financeflow_app/pkg/config"
	"github.com/financeflow/financeflow_app/pkg/database"
)

// schema mirrors the production tables. The integration suite provisions it
// on the target database so the tests are self-contained.
const schema = `
CREATE TABLE IF NOT EXISTS customers (
	customer_id     TEXT PRIMARY KEY,
	owner_id        TEXT NOT NULL,
	name            TEXT NOT NULL,
	email           TEXT NOT NULL DEFAULT '',
	phone           TEXT NOT NULL DEFAULT '',
	address         TEXT NOT NULL DEFAULT '',
	created_at      TIMESTAMPTZ NOT NULL,
	created_by      TEXT NOT NULL,
	last_updated_at TIMESTAMPTZ NOT NULL,
	last_updated_by TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS items (
	item_id         TEXT PRIMARY KEY,
	owner_id        TEXT NOT NULL,
	name            TEXT NOT NULL,
	description     TEXT NOT NULL DEFAULT '',
	unit_price      NUMERIC NOT NULL,
	tax_rate        NUMERIC NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL,
	created_by      TEXT NOT NULL,
	last_updated_at TIMESTAMPTZ NOT NULL,
	last_updated_by TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sales_categories (
	sales_category_id TEXT PRIMARY KEY,
	owner_id          TEXT NOT NULL,
	name              TEXT NOT NULL,
	description       TEXT NOT NULL DEFAULT '',
	created_at        TIMESTAMPTZ NOT NULL,
	created_by        TEXT NOT NULL,
	last_updated_at   TIMESTAMPTZ NOT NULL,
	last_updated_by   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS documents (
	document_id       TEXT PRIMARY KEY,
	doc_type          TEXT NOT NULL,
	owner_id          TEXT NOT NULL,
	customer_id       TEXT NOT NULL REFERENCES customers(customer_id),
	number            TEXT NOT NULL,
	issue_date        TIMESTAMPTZ NOT NULL,
	due_date          TIMESTAMPTZ NOT NULL,
	status            TEXT NOT NULL,
	sales_category_id TEXT REFERENCES sales_categories(sales_category_id) ON DELETE SET NULL,
	notes             TEXT NOT NULL DEFAULT '',
	subtotal          NUMERIC NOT NULL,
	tax_amount        NUMERIC NOT NULL,
	total             NUMERIC NOT NULL,
	created_at        TIMESTAMPTZ NOT NULL,
	created_by        TEXT NOT NULL,
	last_updated_at   TIMESTAMPTZ NOT NULL,
	last_updated_by   TEXT NOT NULL,
	UNIQUE (doc_type, number)
);

CREATE TABLE IF NOT EXISTS document_line_items (
	line_item_id    TEXT PRIMARY KEY,
	document_id     TEXT NOT NULL REFERENCES documents(document_id),
	item_id         TEXT REFERENCES items(item_id) ON DELETE SET NULL,
	description     TEXT NOT NULL,
	quantity        NUMERIC NOT NULL,
	unit_price      NUMERIC NOT NULL,
	tax_rate        NUMERIC NOT NULL,
	line_total      NUMERIC NOT NULL,
	position        INT NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL,
	created_by      TEXT NOT NULL,
	last_updated_at TIMESTAMPTZ NOT NULL,
	last_updated_by TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS document_sequences (
	doc_type   TEXT PRIMARY KEY,
	last_value BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS expenses (
	expense_id      TEXT PRIMARY KEY,
	owner_id        TEXT NOT NULL,
	customer_id     TEXT REFERENCES customers(customer_id) ON DELETE SET NULL,
	category        TEXT NOT NULL,
	description     TEXT NOT NULL,
	amount          NUMERIC NOT NULL,
	tax_amount      NUMERIC NOT NULL,
	expense_date    TIMESTAMPTZ NOT NULL,
	notes           TEXT NOT NULL DEFAULT '',
	created_at      TIMESTAMPTZ NOT NULL,
	created_by      TEXT NOT NULL,
	last_updated_at TIMESTAMPTZ NOT NULL,
	last_updated_by TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS tax_types (
	tax_type_id     TEXT PRIMARY KEY,
	owner_id        TEXT NOT NULL,
	title           TEXT NOT NULL,
	rate            NUMERIC NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL,
	created_by      TEXT NOT NULL,
	last_updated_at TIMESTAMPTZ NOT NULL,
	last_updated_by TEXT NOT NULL
);
`

// PgsqlIntegrationTestSuite runs against a real database and is skipped when
// PGSQL_URL is not configured.
type PgsqlIntegrationTestSuite struct {
	suite.Suite
	provider portsrepo.RepositoryProvider
	closeFn  func()

	ownerID    string
	customerID string
}

func (suite *PgsqlIntegrationTestSuite) SetupSuite() {
	cfg, err := config.LoadConfig()
	suite.Require().NoError(err)
	if cfg.DatabaseURL == "" {
		suite.T().Skip("PGSQL_URL not set, skipping integration tests")
	}

	ctx := context.Background()
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	suite.Require().NoError(err)
	suite.closeFn = func() { database.ClosePgxPool(pool) }

	_, err = pool.Exec(ctx, schema)
	suite.Require().NoError(err)

	suite.provider = pgsql.NewRepositoryProvider(pool)
}

func (suite *PgsqlIntegrationTestSuite) TearDownSuite() {
	if suite.closeFn != nil {
		suite.closeFn()
	}
}

func (suite *PgsqlIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.ownerID = uuid.NewString()
	suite.customerID = uuid.NewString()

	now := time.Now().UTC()
	err := suite.provider.CustomerRepo.SaveCustomer(ctx, domain.Customer{
		CustomerID: suite.customerID,
		OwnerID:    suite.ownerID,
		Name:       "Integration Customer",
		AuditFields: domain.AuditFields{
			CreatedAt: now, CreatedBy: suite.ownerID,
			LastUpdatedAt: now, LastUpdatedBy: suite.ownerID,
		},
	})
	suite.Require().NoError(err)
}

func (suite *PgsqlIntegrationTestSuite) newDocument(number string) (domain.Document, []domain.LineItem) {
	now := time.Now().UTC()
	documentID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt: now, CreatedBy: suite.ownerID,
		LastUpdatedAt: now, LastUpdatedBy: suite.ownerID,
	}
	doc := domain.Document{
		DocumentID:  documentID,
		DocType:     domain.Invoice,
		OwnerID:     suite.ownerID,
		CustomerID:  suite.customerID,
		Number:      number,
		IssueDate:   now,
		DueDate:     now.Add(14 * 24 * time.Hour),
		Status:      domain.StatusDraft,
		Subtotal:    decimal.NewFromInt(100),
		TaxAmount:   decimal.NewFromInt(20),
		Total:       decimal.NewFromInt(120),
		AuditFields: audit,
	}
	lines := []domain.LineItem{{
		LineItemID:  uuid.NewString(),
		DocumentID:  documentID,
		Description: "Integration line",
		Quantity:    decimal.NewFromInt(1),
		UnitPrice:   decimal.NewFromInt(100),
		TaxRate:     decimal.NewFromInt(20),
		LineTotal:   decimal.NewFromInt(120),
		Position:    0,
		AuditFields: audit,
	}}
	return doc, lines
}

func (suite *PgsqlIntegrationTestSuite) TestDocumentRoundTrip() {
	ctx := context.Background()
	repo := suite.provider.DocumentRepo

	seq, err := repo.NextDocumentSequence(ctx, domain.Invoice)
	suite.Require().NoError(err)

	doc, lines := suite.newDocument(numberFor(seq))
	suite.Require().NoError(repo.SaveDocument(ctx, doc, lines))

	found, err := repo.FindDocumentByID(ctx, domain.Invoice, doc.DocumentID)
	suite.Require().NoError(err)
	suite.Equal(doc.Number, found.Number)
	suite.Equal(domain.StatusDraft, found.Status)
	suite.True(found.Total.Equal(doc.Total))

	foundLines, err := repo.FindLineItemsByDocumentID(ctx, doc.DocumentID)
	suite.Require().NoError(err)
	suite.Require().Len(foundLines, 1)
	suite.Equal("Integration line", foundLines[0].Description)

	suite.Require().NoError(repo.DeleteDocument(ctx, domain.Invoice, doc.DocumentID))
	_, err = repo.FindDocumentByID(ctx, domain.Invoice, doc.DocumentID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PgsqlIntegrationTestSuite) TestDuplicateNumberRejected() {
	ctx := context.Background()
	repo := suite.provider.DocumentRepo

	seq, err := repo.NextDocumentSequence(ctx, domain.Invoice)
	suite.Require().NoError(err)

	first, firstLines := suite.newDocument(numberFor(seq))
	suite.Require().NoError(repo.SaveDocument(ctx, first, firstLines))

	second, secondLines := suite.newDocument(numberFor(seq))
	err = repo.SaveDocument(ctx, second, secondLines)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	// The failed save must leave no orphan lines behind
	orphanLines, err := repo.FindLineItemsByDocumentID(ctx, second.DocumentID)
	suite.Require().NoError(err)
	suite.Empty(orphanLines)
}

func (suite *PgsqlIntegrationTestSuite) TestStatusGuardConflict() {
	ctx := context.Background()
	repo := suite.provider.DocumentRepo

	seq, err := repo.NextDocumentSequence(ctx, domain.Invoice)
	suite.Require().NoError(err)

	doc, lines := suite.newDocument(numberFor(seq))
	suite.Require().NoError(repo.SaveDocument(ctx, doc, lines))

	// A stale expected status loses the race
	doc.Status = domain.StatusPaid
	err = repo.UpdateDocument(ctx, doc, lines, domain.StatusOpen)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)

	doc.Status = domain.StatusPending
	suite.Require().NoError(repo.UpdateDocument(ctx, doc, lines, domain.StatusDraft))
}

func (suite *PgsqlIntegrationTestSuite) TestSequenceIsMonotonic() {
	ctx := context.Background()
	repo := suite.provider.DocumentRepo

	first, err := repo.NextDocumentSequence(ctx, domain.Invoice)
	suite.Require().NoError(err)
	second, err := repo.NextDocumentSequence(ctx, domain.Invoice)
	suite.Require().NoError(err)
	suite.Greater(second, first)
}

func (suite *PgsqlIntegrationTestSuite) TestReportingSummary() {
	ctx := context.Background()
	repo := suite.provider.DocumentRepo

	seq, err := repo.NextDocumentSequence(ctx, domain.Invoice)
	suite.Require().NoError(err)
	doc, lines := suite.newDocument(numberFor(seq))
	suite.Require().NoError(repo.SaveDocument(ctx, doc, lines))

	rows, err := suite.provider.ReportingRepo.GetDocumentSummaryData(ctx, domain.Invoice, suite.ownerID)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal(domain.StatusDraft, rows[0].Status)
	suite.Equal(int64(1), rows[0].Count)
	suite.True(rows[0].Total.Equal(decimal.NewFromInt(120)))
}

func (suite *PgsqlIntegrationTestSuite) TestExpenseRoundTrip() {
	ctx := context.Background()
	repo := suite.provider.ExpenseRepo

	now := time.Now().UTC()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		OwnerID:     suite.ownerID,
		CustomerID:  &suite.customerID,
		Category:    domain.ExpenseTravel,
		Description: "Integration trip",
		Amount:      decimal.RequireFromString("240.50"),
		TaxAmount:   decimal.RequireFromString("48.10"),
		ExpenseDate: now,
		AuditFields: domain.AuditFields{
			CreatedAt: now, CreatedBy: suite.ownerID,
			LastUpdatedAt: now, LastUpdatedBy: suite.ownerID,
		},
	}
	suite.Require().NoError(repo.SaveExpense(ctx, expense))

	fetched, err := repo.FindExpenseByID(ctx, expense.ExpenseID)
	suite.Require().NoError(err)
	suite.Equal(domain.ExpenseTravel, fetched.Category)
	suite.True(fetched.Amount.Equal(expense.Amount))
	suite.Require().NotNil(fetched.CustomerID)
	suite.Equal(suite.customerID, *fetched.CustomerID)

	listed, err := repo.ListExpensesByOwner(ctx, suite.ownerID)
	suite.Require().NoError(err)
	suite.Require().Len(listed, 1)

	suite.Require().NoError(repo.DeleteExpense(ctx, expense.ExpenseID))
	_, err = repo.FindExpenseByID(ctx, expense.ExpenseID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PgsqlIntegrationTestSuite) TestFinancialTotals() {
	ctx := context.Background()
	docRepo := suite.provider.DocumentRepo

	seq, err := docRepo.NextDocumentSequence(ctx, domain.Invoice)
	suite.Require().NoError(err)
	paid, lines := suite.newDocument(numberFor(seq))
	paid.Status = domain.StatusPaid
	suite.Require().NoError(docRepo.SaveDocument(ctx, paid, lines))

	seq, err = docRepo.NextDocumentSequence(ctx, domain.Invoice)
	suite.Require().NoError(err)
	pending, lines := suite.newDocument(numberFor(seq))
	pending.Status = domain.StatusPending
	suite.Require().NoError(docRepo.SaveDocument(ctx, pending, lines))

	now := time.Now().UTC()
	suite.Require().NoError(suite.provider.ExpenseRepo.SaveExpense(ctx, domain.Expense{
		ExpenseID:   uuid.NewString(),
		OwnerID:     suite.ownerID,
		Category:    domain.ExpenseRent,
		Description: "Office rent",
		Amount:      decimal.NewFromInt(70),
		TaxAmount:   decimal.NewFromInt(14),
		ExpenseDate: now,
		AuditFields: domain.AuditFields{
			CreatedAt: now, CreatedBy: suite.ownerID,
			LastUpdatedAt: now, LastUpdatedBy: suite.ownerID,
		},
	}))

	totals, err := suite.provider.ReportingRepo.GetFinancialTotalsData(ctx, suite.ownerID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), totals.InvoiceCount)
	suite.Equal(int64(0), totals.EstimateCount)
	suite.Equal(int64(1), totals.CustomerCount)
	suite.Equal(int64(1), totals.PendingInvoiceCount)
	suite.True(totals.TotalRevenue.Equal(decimal.NewFromInt(120)), "only the paid invoice counts as revenue")
	suite.True(totals.TotalExpenses.Equal(decimal.NewFromInt(70)))
}

func numberFor(seq int64) string {
	return numbering.Format(domain.Invoice, seq)
}

func TestPgsqlIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PgsqlIntegrationTestSuite))
}
