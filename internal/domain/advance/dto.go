package advance

import (
	"github.com/shopspring/decimal"

	"github.com/staffpay/staffpay-backend-go/internal/pkg/validator"
)

type CreateAdvanceRequest struct {
	EmployeeID string          `json:"-"`
	Amount     decimal.Decimal `json:"amount"`
}

func (r *CreateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideAdvanceRequest struct {
	ID       string `json:"-"`
	Decision string `json:"decision"`
}

func (r *DecideAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Decision != string(StatusApproved) && r.Decision != string(StatusRejected) {
		errs = append(errs, validator.ValidationError{Field: "decision", Message: "must be 'approved' or 'rejected'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdvanceResponse struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employee_id"`
	EmployeeUsername  *string         `json:"employee_username,omitempty"`
	EmployeeStaffRole *string         `json:"employee_staff_role,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	Status            string          `json:"status"`
	RequestDate       string          `json:"request_date"`
}

func NewAdvanceResponse(a AdvanceRequest) AdvanceResponse {
	return AdvanceResponse{
		ID:                a.ID,
		EmployeeID:        a.EmployeeID,
		EmployeeUsername:  a.EmployeeUsername,
		EmployeeStaffRole: a.EmployeeStaffRole,
		Amount:            a.Amount,
		Status:            string(a.Status),
		RequestDate:       a.RequestDate.Format("2006-01-02T15:04:05Z07:00"),
	}
}
