package payment

import (
	"github.com/shopspring/decimal"

	"github.com/staffpay/staffpay-backend-go/internal/pkg/validator"
)

type SettleRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"`
	Year       int    `json:"year"`
}

func (r *SettleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be a calendar month name"})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PaymentResponse struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employee_id"`
	EmployeeUsername  *string         `json:"employee_username,omitempty"`
	EmployeeStaffRole *string         `json:"employee_staff_role,omitempty"`
	Month             string          `json:"month"`
	Year              int             `json:"year"`
	BaseSalary        decimal.Decimal `json:"base_salary"`
	AdvanceDeduction  decimal.Decimal `json:"advance_deduction"`
	AllowancePaid     decimal.Decimal `json:"allowance_paid"`
	FinalPaid         decimal.Decimal `json:"final_paid"`
	CreatedAt         string          `json:"created_at"`
}

func NewPaymentResponse(p Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		EmployeeID:        p.EmployeeID,
		EmployeeUsername:  p.EmployeeUsername,
		EmployeeStaffRole: p.EmployeeStaffRole,
		Month:             p.Month,
		Year:              p.Year,
		BaseSalary:        p.BaseSalary,
		AdvanceDeduction:  p.AdvanceDeduction,
		AllowancePaid:     p.AllowancePaid,
		FinalPaid:         p.FinalPaid,
		CreatedAt:         p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
