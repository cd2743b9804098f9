package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality from the
// composing web/controller layer.
type ServiceContainer struct {
	Document      DocumentSvcFacade
	Customer      CustomerSvcFacade
	Item          ItemSvcFacade
	SalesCategory SalesCategorySvcFacade
	Expense       ExpenseSvcFacade
	TaxType       TaxTypeSvcFacade
	Reporting     ReportingSvcFacade
}
