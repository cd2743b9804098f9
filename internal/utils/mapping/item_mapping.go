package mapping

import (
	"github.com/financeflow/financeflow_app/internal/core/domain"
	"github.com/financeflow/financeflow_app/internal/models"
)

// ToModelItem converts a domain Item to a model Item
func ToModelItem(d domain.Item) models.Item {
	return models.Item{
		ItemID:      d.ItemID,
		OwnerID:     d.OwnerID,
		Name:        d.Name,
		Description: d.Description,
		UnitPrice:   d.UnitPrice,
		TaxRate:     d.TaxRate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainItem converts a model Item to a domain Item
func ToDomainItem(m models.Item) domain.Item {
	return domain.Item{
		ItemID:      m.ItemID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Description: m.Description,
		UnitPrice:   m.UnitPrice,
		TaxRate:     m.TaxRate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
