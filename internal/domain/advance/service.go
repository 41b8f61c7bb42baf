package advance

import "context"

type AdvanceService interface {
	// Create files a new advance request for the calling staff member.
	Create(ctx context.Context, req CreateAdvanceRequest) (AdvanceResponse, error)

	// Decide approves or rejects a pending request. Admin only.
	Decide(ctx context.Context, req DecideAdvanceRequest) (AdvanceResponse, error)

	List(ctx context.Context) ([]AdvanceResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]AdvanceResponse, error)
}
