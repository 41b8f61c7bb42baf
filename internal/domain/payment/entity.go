package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the immutable snapshot of one settlement event. BaseSalary is
// a copy taken at settlement time, so later raises never rewrite history.
// One row may exist per (employee, month, year).
type Payment struct {
	ID               string
	EmployeeID       string
	Month            string
	Year             int
	BaseSalary       decimal.Decimal
	AdvanceDeduction decimal.Decimal
	AllowancePaid    decimal.Decimal
	FinalPaid        decimal.Decimal
	CreatedAt        time.Time

	// Joined fields
	EmployeeUsername  *string
	EmployeeStaffRole *string
}

var monthNames = map[string]struct{}{
	"January": {}, "February": {}, "March": {}, "April": {},
	"May": {}, "June": {}, "July": {}, "August": {},
	"September": {}, "October": {}, "November": {}, "December": {},
}

// IsValidMonth reports whether name is an English calendar month name.
func IsValidMonth(name string) bool {
	_, ok := monthNames[name]
	return ok
}
