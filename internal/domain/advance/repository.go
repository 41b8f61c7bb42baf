package advance

import "context"

type AdvanceRepository interface {
	Create(ctx context.Context, a AdvanceRequest) (AdvanceRequest, error)
	GetByID(ctx context.Context, id string) (AdvanceRequest, error)
	List(ctx context.Context) ([]AdvanceRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]AdvanceRequest, error)

	// HasOutstanding reports whether the employee has a pending or approved
	// request. Used to enforce the single-outstanding-advance rule.
	HasOutstanding(ctx context.Context, employeeID string) (bool, error)

	// Decide flips a pending request to approved or rejected. Returns
	// ErrAdvanceAlreadyDecided when the request is no longer pending.
	Decide(ctx context.Context, id string, decision Status) (AdvanceRequest, error)

	// ClaimOldestApproved flips the employee's earliest approved request
	// (by request date, then id) to processed and returns it. Returns
	// (nil, nil) when no approved request exists. Later approved requests
	// are left untouched for a future cycle.
	ClaimOldestApproved(ctx context.Context, employeeID string) (*AdvanceRequest, error)
}
