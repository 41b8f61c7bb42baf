package advance

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffpay/staffpay-backend-go/internal/domain/advance"
	"github.com/staffpay/staffpay-backend-go/internal/domain/user"
)

type stubUserRepo struct {
	users map[string]user.User
}

func (r *stubUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
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

func (r *stubUserRepo) List(_ context.Context) ([]user.User, error) { return nil, nil }

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) UpdateBaseSalary(_ context.Context, _ string, _ decimal.Decimal) error {
	return nil
}

type stubAdvanceRepo struct {
	requests []advance.AdvanceRequest
	sequence int
}

func (r *stubAdvanceRepo) Create(_ context.Context, a advance.AdvanceRequest) (advance.AdvanceRequest, error) {
	r.sequence++
	a.ID = fmt.Sprintf("adv-%d", r.sequence)
	r.requests = append(r.requests, a)
	return a, nil
}

func (r *stubAdvanceRepo) GetByID(_ context.Context, id string) (advance.AdvanceRequest, error) {
	for _, a := range r.requests {
		if a.ID == id {
			return a, nil
		}
	}
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

func (r *stubAdvanceRepo) HasOutstanding(_ context.Context, employeeID string) (bool, error) {
	for _, a := range r.requests {
		if a.EmployeeID == employeeID && (a.Status == advance.StatusPending || a.Status == advance.StatusApproved) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubAdvanceRepo) Decide(_ context.Context, id string, decision advance.Status) (advance.AdvanceRequest, error) {
	for i, a := range r.requests {
		if a.ID == id {
			if a.Status != advance.StatusPending {
				return advance.AdvanceRequest{}, advance.ErrAdvanceAlreadyDecided
			}
			r.requests[i].Status = decision
			return r.requests[i], nil
		}
	}
	return advance.AdvanceRequest{}, advance.ErrAdvanceNotFound
}

func (r *stubAdvanceRepo) ClaimOldestApproved(_ context.Context, _ string) (*advance.AdvanceRequest, error) {
	return nil, nil
}

func newTestService() (advance.AdvanceService, *stubAdvanceRepo, *stubUserRepo) {
	advances := &stubAdvanceRepo{}
	staffRole := "cashier"
	salary := decimal.NewFromInt(20000)
	users := &stubUserRepo{users: map[string]user.User{
		"emp-1": {ID: "emp-1", Username: "alice", Role: user.RoleStaff, StaffRole: &staffRole, BaseSalary: &salary},
		"adm-1": {ID: "adm-1", Username: "boss", Role: user.RoleAdmin},
	}}
	return NewAdvanceService(advances, users), advances, users
}

func TestCreate_Pending(t *testing.T) {
	svc, advances, _ := newTestService()

	resp, err := svc.Create(context.Background(), advance.CreateAdvanceRequest{
		EmployeeID: "emp-1",
		Amount:     decimal.NewFromInt(5000),
	})
	require.NoError(t, err)

	assert.Equal(t, string(advance.StatusPending), resp.Status)
	assert.Len(t, advances.requests, 1)
}

func TestCreate_RefusedWhileOutstanding(t *testing.T) {
	svc, advances, _ := newTestService()

	for _, status := range []advance.Status{advance.StatusPending, advance.StatusApproved} {
		advances.requests = []advance.AdvanceRequest{
			{ID: "adv-0", EmployeeID: "emp-1", Amount: decimal.NewFromInt(1000), Status: status},
		}

		_, err := svc.Create(context.Background(), advance.CreateAdvanceRequest{
			EmployeeID: "emp-1",
			Amount:     decimal.NewFromInt(5000),
		})
		assert.ErrorIs(t, err, advance.ErrAdvanceOutstanding, "status %s", status)
	}
}

func TestCreate_AllowedAfterSettledOrRejected(t *testing.T) {
	svc, advances, _ := newTestService()

	advances.requests = []advance.AdvanceRequest{
		{ID: "adv-0", EmployeeID: "emp-1", Amount: decimal.NewFromInt(1000), Status: advance.StatusProcessed},
		{ID: "adv-1", EmployeeID: "emp-1", Amount: decimal.NewFromInt(1000), Status: advance.StatusRejected},
	}

	_, err := svc.Create(context.Background(), advance.CreateAdvanceRequest{
		EmployeeID: "emp-1",
		Amount:     decimal.NewFromInt(5000),
	})
	assert.NoError(t, err)
}

func TestCreate_NonStaffRejected(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Create(context.Background(), advance.CreateAdvanceRequest{
		EmployeeID: "adm-1",
		Amount:     decimal.NewFromInt(5000),
	})
	assert.ErrorIs(t, err, user.ErrNotStaff)
}

func TestCreate_InvalidAmount(t *testing.T) {
	svc, _, _ := newTestService()

	for _, amount := range []int64{0, -100} {
		_, err := svc.Create(context.Background(), advance.CreateAdvanceRequest{
			EmployeeID: "emp-1",
			Amount:     decimal.NewFromInt(amount),
		})
		assert.Error(t, err, "amount %d", amount)
	}
}

func TestDecide_Approve(t *testing.T) {
	svc, advances, _ := newTestService()
	advances.requests = []advance.AdvanceRequest{
		{ID: "adv-1", EmployeeID: "emp-1", Amount: decimal.NewFromInt(5000), Status: advance.StatusPending},
	}

	resp, err := svc.Decide(context.Background(), advance.DecideAdvanceRequest{
		ID:       "adv-1",
		Decision: string(advance.StatusApproved),
	})
	require.NoError(t, err)
	assert.Equal(t, string(advance.StatusApproved), resp.Status)
}

func TestDecide_AlreadyDecided(t *testing.T) {
	svc, advances, _ := newTestService()
	advances.requests = []advance.AdvanceRequest{
		{ID: "adv-1", EmployeeID: "emp-1", Amount: decimal.NewFromInt(5000), Status: advance.StatusApproved},
	}

	_, err := svc.Decide(context.Background(), advance.DecideAdvanceRequest{
		ID:       "adv-1",
		Decision: string(advance.StatusRejected),
	})
	assert.ErrorIs(t, err, advance.ErrAdvanceAlreadyDecided)
}

func TestDecide_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Decide(context.Background(), advance.DecideAdvanceRequest{
		ID:       "missing",
		Decision: string(advance.StatusApproved),
	})
	assert.ErrorIs(t, err, advance.ErrAdvanceNotFound)
}

func TestDecide_InvalidDecision(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Decide(context.Background(), advance.DecideAdvanceRequest{
		ID:       "adv-1",
		Decision: "maybe",
	})
	assert.Error(t, err)
}
