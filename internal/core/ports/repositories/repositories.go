package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	DocumentRepo      DocumentRepositoryFacade
	CustomerRepo      CustomerRepositoryFacade
	ItemRepo          ItemRepositoryFacade
	SalesCategoryRepo SalesCategoryRepositoryFacade
	ExpenseRepo       ExpenseRepositoryFacade
	TaxTypeRepo       TaxTypeRepositoryFacade
	ReportingRepo     ReportingRepository
}
