package allowance

import (
	"github.com/shopspring/decimal"

	"github.com/staffpay/staffpay-backend-go/internal/pkg/validator"
)

type GrantAllowanceRequest struct {
	EmployeeID string          `json:"-"`
	Amount     decimal.Decimal `json:"amount"`
	Note       *string         `json:"note,omitempty"`
}

func (r *GrantAllowanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AllowanceResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Amount     decimal.Decimal `json:"amount"`
	Note       *string         `json:"note,omitempty"`
	Status     string          `json:"status"`
	CreatedAt  string          `json:"created_at"`
}

func NewAllowanceResponse(a Allowance) AllowanceResponse {
	return AllowanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Amount:     a.Amount,
		Note:       a.Note,
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
