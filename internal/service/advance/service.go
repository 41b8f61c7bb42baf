package advance

import (
	"context"

	"github.com/staffpay/staffpay-backend-go/internal/domain/advance"
	"github.com/staffpay/staffpay-backend-go/internal/domain/user"
)

type AdvanceServiceImpl struct {
	advanceRepo advance.AdvanceRepository
	userRepo    user.UserRepository
}

func NewAdvanceService(advanceRepo advance.AdvanceRepository, userRepo user.UserRepository) advance.AdvanceService {
	return &AdvanceServiceImpl{
		advanceRepo: advanceRepo,
		userRepo:    userRepo,
	}
}

func (s *AdvanceServiceImpl) Create(ctx context.Context, req advance.CreateAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	if !u.IsStaff() {
		return advance.AdvanceResponse{}, user.ErrNotStaff
	}

	// One advance at a time: a new request is refused while an earlier one
	// is still waiting for a decision or for settlement.
	outstanding, err := s.advanceRepo.HasOutstanding(ctx, req.EmployeeID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	if outstanding {
		return advance.AdvanceResponse{}, advance.ErrAdvanceOutstanding
	}

	created, err := s.advanceRepo.Create(ctx, advance.AdvanceRequest{
		EmployeeID: req.EmployeeID,
		Amount:     req.Amount,
		Status:     advance.StatusPending,
	})
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	return advance.NewAdvanceResponse(created), nil
}

func (s *AdvanceServiceImpl) Decide(ctx context.Context, req advance.DecideAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	decided, err := s.advanceRepo.Decide(ctx, req.ID, advance.Status(req.Decision))
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	return advance.NewAdvanceResponse(decided), nil
}

func (s *AdvanceServiceImpl) List(ctx context.Context) ([]advance.AdvanceResponse, error) {
	requests, err := s.advanceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]advance.AdvanceResponse, 0, len(requests))
	for _, a := range requests {
		responses = append(responses, advance.NewAdvanceResponse(a))
	}

	return responses, nil
}

func (s *AdvanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]advance.AdvanceResponse, error) {
	requests, err := s.advanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]advance.AdvanceResponse, 0, len(requests))
	for _, a := range requests {
		responses = append(responses, advance.NewAdvanceResponse(a))
	}

	return responses, nil
}
