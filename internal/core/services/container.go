package services

import (
	portsrepo "github.com/financeflow/financeflow_app/internal/core/ports/repositories"
	portssvc "github.com/financeflow/financeflow_app/internal/core/ports/services"
)

// NewServiceContainer wires every application service from the repository
// provider. This is the composition root for the service layer.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Document:      NewDocumentService(repos.DocumentRepo, repos.CustomerRepo),
		Customer:      NewCustomerService(repos.CustomerRepo, repos.DocumentRepo),
		Item:          NewItemService(repos.ItemRepo),
		SalesCategory: NewSalesCategoryService(repos.SalesCategoryRepo),
		Expense:       NewExpenseService(repos.ExpenseRepo, repos.CustomerRepo),
		TaxType:       NewTaxTypeService(repos.TaxTypeRepo),
		Reporting:     NewReportingService(repos.ReportingRepo),
	}
}
