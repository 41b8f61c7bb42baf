package payroll

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/staffpay/staffpay-backend-go/internal/domain/advance"
	"github.com/staffpay/staffpay-backend-go/internal/domain/allowance"
	"github.com/staffpay/staffpay-backend-go/internal/domain/payment"
	"github.com/staffpay/staffpay-backend-go/internal/domain/user"
	"github.com/staffpay/staffpay-backend-go/internal/pkg/database"
)

type PaymentServiceImpl struct {
	tx            database.TxManager
	paymentRepo   payment.PaymentRepository
	userRepo      user.UserRepository
	advanceRepo   advance.AdvanceRepository
	allowanceRepo allowance.AllowanceRepository
}

func NewPaymentService(
	tx database.TxManager,
	paymentRepo payment.PaymentRepository,
	userRepo user.UserRepository,
	advanceRepo advance.AdvanceRepository,
	allowanceRepo allowance.AllowanceRepository,
) payment.PaymentService {
	return &PaymentServiceImpl{
		tx:            tx,
		paymentRepo:   paymentRepo,
		userRepo:      userRepo,
		advanceRepo:   advanceRepo,
		allowanceRepo: allowanceRepo,
	}
}

// Settle closes one pay period for one staff member. Every record mutation
// happens inside a single transaction: the advance claim, the allowance
// claims and the payment insert commit or roll back together, so a failed
// settlement leaves no half-consumed state behind.
func (s *PaymentServiceImpl) Settle(ctx context.Context, req payment.SettleRequest) (payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	var created payment.Payment
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		employee, err := s.userRepo.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return err
		}
		if !employee.IsStaff() {
			return user.ErrNotStaff
		}

		// Fast already-settled check; the unique constraint on
		// (employee, month, year) still backs the concurrent case.
		exists, err := s.paymentRepo.ExistsForPeriod(ctx, req.EmployeeID, req.Month, req.Year)
		if err != nil {
			return err
		}
		if exists {
			return payment.ErrAlreadySettled
		}

		advanceDeduction := decimal.Zero
		claimed, err := s.advanceRepo.ClaimOldestApproved(ctx, req.EmployeeID)
		if err != nil {
			return err
		}
		if claimed != nil {
			advanceDeduction = claimed.Amount
		}

		claimedAllowances, err := s.allowanceRepo.ClaimPending(ctx, req.EmployeeID)
		if err != nil {
			return err
		}
		allowanceAmounts := make([]decimal.Decimal, 0, len(claimedAllowances))
		for _, a := range claimedAllowances {
			allowanceAmounts = append(allowanceAmounts, a.Amount)
		}

		totals := payment.ComputeSettlement(employee.Salary(), advanceDeduction, allowanceAmounts)

		created, err = s.paymentRepo.Create(ctx, payment.Payment{
			EmployeeID:       req.EmployeeID,
			Month:            req.Month,
			Year:             req.Year,
			BaseSalary:       totals.BaseSalary,
			AdvanceDeduction: totals.AdvanceDeduction,
			AllowancePaid:    totals.AllowancePaid,
			FinalPaid:        totals.FinalPaid,
		})
		return err
	})
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	return payment.NewPaymentResponse(created), nil
}

func (s *PaymentServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payment.PaymentResponse, error) {
	payments, err := s.paymentRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]payment.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, payment.NewPaymentResponse(p))
	}

	return responses, nil
}

func (s *PaymentServiceImpl) ListAll(ctx context.Context) ([]payment.PaymentResponse, error) {
	payments, err := s.paymentRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]payment.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, payment.NewPaymentResponse(p))
	}

	return responses, nil
}
