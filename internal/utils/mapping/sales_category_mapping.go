package mapping

import (
	"github.com/financeflow/financeflow_app/internal/core/domain"
	"github.com/financeflow/financeflow_app/internal/models"
)

// ToModelSalesCategory converts a domain SalesCategory to a model SalesCategory
func ToModelSalesCategory(d domain.SalesCategory) models.SalesCategory {
	return models.SalesCategory{
		SalesCategoryID: d.SalesCategoryID,
		OwnerID:         d.OwnerID,
		Name:            d.Name,
		Description:     d.Description,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSalesCategory converts a model SalesCategory to a domain SalesCategory
func ToDomainSalesCategory(m models.SalesCategory) domain.SalesCategory {
	return domain.SalesCategory{
		SalesCategoryID: m.SalesCategoryID,
		OwnerID:         m.OwnerID,
		Name:            m.Name,
		Description:     m.Description,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
