package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/staffpay/staffpay-backend-go/internal/domain/advance"
	"github.com/staffpay/staffpay-backend-go/internal/domain/allowance"
	"github.com/staffpay/staffpay-backend-go/internal/domain/payment"
	"github.com/staffpay/staffpay-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	userRepo      user.UserRepository
	paymentRepo   payment.PaymentRepository
	advanceRepo   advance.AdvanceRepository
	allowanceRepo allowance.AllowanceRepository
}

func NewUserService(
	userRepo user.UserRepository,
	paymentRepo payment.PaymentRepository,
	advanceRepo advance.AdvanceRepository,
	allowanceRepo allowance.AllowanceRepository,
) user.UserService {
	return &UserServiceImpl{
		userRepo:      userRepo,
		paymentRepo:   paymentRepo,
		advanceRepo:   advanceRepo,
		allowanceRepo: allowanceRepo,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req user.RegisterUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, err
	}

	newUser := user.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
		PhotoURL:     req.PhotoURL,
	}
	if newUser.Role == user.RoleStaff {
		newUser.StaffRole = req.StaffRole
		newUser.BaseSalary = req.BaseSalary
	}

	created, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.NewUserResponse(created), nil
}

func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.NewUserResponse(u))
	}

	return responses, nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, id string) error {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if u.IsSuperAdmin() {
		return user.ErrCannotDeleteSuperAdmin
	}

	return s.userRepo.Delete(ctx, id)
}

func (s *UserServiceImpl) RaiseSalary(ctx context.Context, req user.RaiseSalaryRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := s.userRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return err
	}
	if !u.IsStaff() {
		return user.ErrNotStaff
	}

	return s.userRepo.UpdateBaseSalary(ctx, req.EmployeeID, req.NewSalary)
}

func (s *UserServiceImpl) FinancialDetails(ctx context.Context, employeeID string) (user.FinancialDetailsResponse, error) {
	u, err := s.userRepo.GetByID(ctx, employeeID)
	if err != nil {
		return user.FinancialDetailsResponse{}, err
	}

	payments, err := s.paymentRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return user.FinancialDetailsResponse{}, err
	}
	advances, err := s.advanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return user.FinancialDetailsResponse{}, err
	}
	allowances, err := s.allowanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return user.FinancialDetailsResponse{}, err
	}

	details := user.FinancialDetailsResponse{
		User:       user.NewUserResponse(u),
		Payments:   make([]payment.PaymentResponse, 0, len(payments)),
		Advances:   make([]advance.AdvanceResponse, 0, len(advances)),
		Allowances: make([]allowance.AllowanceResponse, 0, len(allowances)),
	}
	for _, p := range payments {
		details.Payments = append(details.Payments, payment.NewPaymentResponse(p))
	}
	for _, a := range advances {
		details.Advances = append(details.Advances, advance.NewAdvanceResponse(a))
	}
	for _, a := range allowances {
		details.Allowances = append(details.Allowances, allowance.NewAllowanceResponse(a))
	}

	return details, nil
}
