package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/financeflow/financeflow_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	documentRepo := newPgxDocumentRepository(dbPool)
	customerRepo := newPgxCustomerRepository(dbPool)
	itemRepo := newPgxItemRepository(dbPool)
	salesCategoryRepo := newPgxSalesCategoryRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)
	taxTypeRepo := newPgxTaxTypeRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		DocumentRepo:      documentRepo,
		CustomerRepo:      customerRepo,
		ItemRepo:          itemRepo,
		SalesCategoryRepo: salesCategoryRepo,
		ExpenseRepo:       expenseRepo,
		TaxTypeRepo:       taxTypeRepo,
		ReportingRepo:     reportingRepo,
	}
}
