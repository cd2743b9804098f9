package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies a business expense for reporting.
type ExpenseCategory string

const (
	ExpenseOfficeSupplies       ExpenseCategory = "OFFICE_SUPPLIES"
	ExpenseTravel               ExpenseCategory = "TRAVEL"
	ExpenseUtilities            ExpenseCategory = "UTILITIES"
	ExpenseRent                 ExpenseCategory = "RENT"
	ExpenseMarketing            ExpenseCategory = "MARKETING"
	ExpenseSoftware             ExpenseCategory = "SOFTWARE"
	ExpenseEquipment            ExpenseCategory = "EQUIPMENT"
	ExpensePayroll              ExpenseCategory = "PAYROLL"
	ExpenseProfessionalServices ExpenseCategory = "PROFESSIONAL_SERVICES"
	ExpenseInsurance            ExpenseCategory = "INSURANCE"
	ExpenseTaxes                ExpenseCategory = "TAXES"
	ExpenseOther                ExpenseCategory = "OTHER"
)

var expenseCategories = map[ExpenseCategory]struct{}{
	ExpenseOfficeSupplies:       {},
	ExpenseTravel:               {},
	ExpenseUtilities:            {},
	ExpenseRent:                 {},
	ExpenseMarketing:            {},
	ExpenseSoftware:             {},
	ExpenseEquipment:            {},
	ExpensePayroll:              {},
	ExpenseProfessionalServices: {},
	ExpenseInsurance:            {},
	ExpenseTaxes:                {},
	ExpenseOther:                {},
}

// IsValid reports whether the category is one of the known values.
func (c ExpenseCategory) IsValid() bool {
	_, ok := expenseCategories[c]
	return ok
}

// Expense records money spent by an owner, optionally attributed to a
// customer. Expenses feed the financial overview alongside invoice revenue.
type Expense struct {
	ExpenseID   string          `json:"expenseID"` // Primary Key (e.g., UUID)
	OwnerID     string          `json:"ownerID"`
	CustomerID  *string         `json:"customerID,omitempty"` // Optional attribution
	Category    ExpenseCategory `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	ExpenseDate time.Time       `json:"expenseDate"`
	Notes       string          `json:"notes"`
	AuditFields
}
