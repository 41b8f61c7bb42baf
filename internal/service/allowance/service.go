package allowance

import (
	"context"

	"github.com/staffpay/staffpay-backend-go/internal/domain/allowance"
	"github.com/staffpay/staffpay-backend-go/internal/domain/user"
)

type AllowanceServiceImpl struct {
	allowanceRepo allowance.AllowanceRepository
	userRepo      user.UserRepository
}

func NewAllowanceService(allowanceRepo allowance.AllowanceRepository, userRepo user.UserRepository) allowance.AllowanceService {
	return &AllowanceServiceImpl{
		allowanceRepo: allowanceRepo,
		userRepo:      userRepo,
	}
}

func (s *AllowanceServiceImpl) Grant(ctx context.Context, req allowance.GrantAllowanceRequest) (allowance.AllowanceResponse, error) {
	if err := req.Validate(); err != nil {
		return allowance.AllowanceResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return allowance.AllowanceResponse{}, err
	}
	if !u.IsStaff() {
		return allowance.AllowanceResponse{}, user.ErrNotStaff
	}

	created, err := s.allowanceRepo.Create(ctx, allowance.Allowance{
		EmployeeID: req.EmployeeID,
		Amount:     req.Amount,
		Note:       req.Note,
		Status:     allowance.StatusPending,
	})
	if err != nil {
		return allowance.AllowanceResponse{}, err
	}

	return allowance.NewAllowanceResponse(created), nil
}

func (s *AllowanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]allowance.AllowanceResponse, error) {
	allowances, err := s.allowanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]allowance.AllowanceResponse, 0, len(allowances))
	for _, a := range allowances {
		responses = append(responses, allowance.NewAllowanceResponse(a))
	}

	return responses, nil
}
