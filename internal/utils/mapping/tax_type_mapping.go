package mapping

import (
	"github.com/financeflow/financeflow_app/internal/core/domain"
	"github.com/financeflow/financeflow_app/internal/models"
)

// ToModelTaxType converts a domain TaxType to a model TaxType
func ToModelTaxType(d domain.TaxType) models.TaxType {
	return models.TaxType{
		TaxTypeID:   d.TaxTypeID,
		OwnerID:     d.OwnerID,
		Title:       d.Title,
		Rate:        d.Rate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTaxType converts a model TaxType to a domain TaxType
func ToDomainTaxType(m models.TaxType) domain.TaxType {
	return domain.TaxType{
		TaxTypeID:   m.TaxTypeID,
		OwnerID:     m.OwnerID,
		Title:       m.Title,
		Rate:        m.Rate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
