package user

import (
	"context"

	"github.com/staffpay/staffpay-backend-go/internal/domain/advance"
	"github.com/staffpay/staffpay-backend-go/internal/domain/allowance"
	"github.com/staffpay/staffpay-backend-go/internal/domain/payment"
)

// FinancialDetailsResponse is the combined money view of one staff member:
// payment history (newest first), advance requests and allowance grants.
type FinancialDetailsResponse struct {
	User       UserResponse                  `json:"user"`
	Payments   []payment.PaymentResponse     `json:"payments"`
	Advances   []advance.AdvanceResponse     `json:"advances"`
	Allowances []allowance.AllowanceResponse `json:"allowances"`
}

type UserService interface {
	Register(ctx context.Context, req RegisterUserRequest) (UserResponse, error)
	List(ctx context.Context) ([]UserResponse, error)

	// Delete removes an account. Superadmin accounts are refused.
	Delete(ctx context.Context, id string) error

	// RaiseSalary overwrites a staff account's base salary. Already-created
	// payment rows keep the salary copy they were settled with.
	RaiseSalary(ctx context.Context, req RaiseSalaryRequest) error

	FinancialDetails(ctx context.Context, employeeID string) (FinancialDetailsResponse, error)
}
