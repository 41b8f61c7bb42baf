package user

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffpay/staffpay-backend-go/internal/domain/advance"
	"github.com/staffpay/staffpay-backend-go/internal/domain/allowance"
	"github.com/staffpay/staffpay-backend-go/internal/domain/payment"
	"github.com/staffpay/staffpay-backend-go/internal/domain/user"
)

type stubUserRepo struct {
	users    map[string]user.User
	sequence int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]user.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return user.User{}, user.ErrUsernameExists
		}
	}
	r.sequence++
	u.ID = fmt.Sprintf("usr-%d", r.sequence)
	r.users[u.ID] = u
	return u, nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) UpdateBaseSalary(_ context.Context, id string, newSalary decimal.Decimal) error {
	u, ok := r.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.BaseSalary = &newSalary
	r.users[id] = u
	return nil
}

type stubPaymentRepo struct{ payments []payment.Payment }

func (r *stubPaymentRepo) Create(_ context.Context, p payment.Payment) (payment.Payment, error) {
	r.payments = append(r.payments, p)
	return p, nil
}

func (r *stubPaymentRepo) ExistsForPeriod(_ context.Context, _, _ string, _ int) (bool, error) {
	return false, nil
}

func (r *stubPaymentRepo) ListByEmployee(_ context.Context, employeeID string) ([]payment.Payment, error) {
	var out []payment.Payment
	for _, p := range r.payments {
		if p.EmployeeID == employeeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPaymentRepo) ListAll(_ context.Context) ([]payment.Payment, error) {
	return r.payments, nil
}

type stubAdvanceRepo struct{ requests []advance.AdvanceRequest }

func (r *stubAdvanceRepo) Create(_ context.Context, a advance.AdvanceRequest) (advance.AdvanceRequest, error) {
	r.requests = append(r.requests, a)
	return a, nil
}

func (r *stubAdvanceRepo) GetByID(_ context.Context, _ string) (advance.AdvanceRequest, error) {
	return advance.AdvanceRequest{}, advance.ErrAdvanceNotFound
}

func (r *stubAdvanceRepo) List(_ context.Context) ([]advance.AdvanceRequest, error) {
	return r.requests, nil
}

func (r *stubAdvanceRepo) ListByEmployee(_ context.Context, employeeID string) ([]advance.AdvanceRequest, error) {
	var out []advance.AdvanceRequest
	for _, a := range r.requests {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubAdvanceRepo) HasOutstanding(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (r *stubAdvanceRepo) Decide(_ context.Context, _ string, _ advance.Status) (advance.AdvanceRequest, error) {
	return advance.AdvanceRequest{}, advance.ErrAdvanceNotFound
}

func (r *stubAdvanceRepo) ClaimOldestApproved(_ context.Context, _ string) (*advance.AdvanceRequest, error) {
	return nil, nil
}

type stubAllowanceRepo struct{ allowances []allowance.Allowance }

func (r *stubAllowanceRepo) Create(_ context.Context, a allowance.Allowance) (allowance.Allowance, error) {
	r.allowances = append(r.allowances, a)
	return a, nil
}

func (r *stubAllowanceRepo) ListByEmployee(_ context.Context, employeeID string) ([]allowance.Allowance, error) {
	var out []allowance.Allowance
	for _, a := range r.allowances {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubAllowanceRepo) ClaimPending(_ context.Context, _ string) ([]allowance.Allowance, error) {
	return nil, nil
}

func newTestService() (user.UserService, *stubUserRepo) {
	users := newStubUserRepo()
	svc := NewUserService(users, &stubPaymentRepo{}, &stubAdvanceRepo{}, &stubAllowanceRepo{})
	return svc, users
}

func staffRegisterRequest(username string) user.RegisterUserRequest {
	staffRole := "cashier"
	salary := decimal.NewFromInt(20000)
	return user.RegisterUserRequest{
		Username:   username,
		Password:   "secret123",
		Role:       string(user.RoleStaff),
		StaffRole:  &staffRole,
		BaseSalary: &salary,
	}
}

func TestRegister_StaffHashedPassword(t *testing.T) {
	svc, users := newTestService()

	resp, err := svc.Register(context.Background(), staffRegisterRequest("alice"))
	require.NoError(t, err)

	stored := users.users[resp.ID]
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
	require.NotNil(t, resp.BaseSalary)
	assert.True(t, resp.BaseSalary.Equal(decimal.NewFromInt(20000)))
}

func TestRegister_AdminIgnoresSalaryFields(t *testing.T) {
	svc, users := newTestService()

	staffRole := "cashier"
	salary := decimal.NewFromInt(9999)
	resp, err := svc.Register(context.Background(), user.RegisterUserRequest{
		Username:   "boss",
		Password:   "secret123",
		Role:       string(user.RoleAdmin),
		StaffRole:  &staffRole,
		BaseSalary: &salary,
	})
	require.NoError(t, err)

	stored := users.users[resp.ID]
	assert.Nil(t, stored.StaffRole)
	assert.Nil(t, stored.BaseSalary)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), staffRegisterRequest("alice"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), staffRegisterRequest("alice"))
	assert.ErrorIs(t, err, user.ErrUsernameExists)
}

func TestRegister_InvalidRequest(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), user.RegisterUserRequest{
		Username: "x",
		Password: "pw",
		Role:     "ghost",
	})
	assert.Error(t, err)
}

func TestDelete_SuperAdminRefused(t *testing.T) {
	svc, users := newTestService()
	users.users["root-1"] = user.User{ID: "root-1", Username: "root", Role: user.RoleSuperAdmin}

	err := svc.Delete(context.Background(), "root-1")
	assert.ErrorIs(t, err, user.ErrCannotDeleteSuperAdmin)
	assert.Contains(t, users.users, "root-1")
}

func TestDelete_Staff(t *testing.T) {
	svc, users := newTestService()

	resp, err := svc.Register(context.Background(), staffRegisterRequest("alice"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), resp.ID))
	assert.NotContains(t, users.users, resp.ID)
}

func TestRaiseSalary(t *testing.T) {
	svc, users := newTestService()

	resp, err := svc.Register(context.Background(), staffRegisterRequest("alice"))
	require.NoError(t, err)

	err = svc.RaiseSalary(context.Background(), user.RaiseSalaryRequest{
		EmployeeID: resp.ID,
		NewSalary:  decimal.NewFromInt(25000),
	})
	require.NoError(t, err)
	assert.True(t, users.users[resp.ID].BaseSalary.Equal(decimal.NewFromInt(25000)))
}

func TestRaiseSalary_NonStaff(t *testing.T) {
	svc, users := newTestService()
	users.users["adm-1"] = user.User{ID: "adm-1", Username: "boss", Role: user.RoleAdmin}

	err := svc.RaiseSalary(context.Background(), user.RaiseSalaryRequest{
		EmployeeID: "adm-1",
		NewSalary:  decimal.NewFromInt(25000),
	})
	assert.ErrorIs(t, err, user.ErrNotStaff)
}

func TestRaiseSalary_Negative(t *testing.T) {
	svc, _ := newTestService()

	err := svc.RaiseSalary(context.Background(), user.RaiseSalaryRequest{
		EmployeeID: "usr-1",
		NewSalary:  decimal.NewFromInt(-1),
	})
	assert.Error(t, err)
}

func TestFinancialDetails_UnknownUser(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.FinancialDetails(context.Background(), "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
