package allowance

import "context"

type AllowanceRepository interface {
	Create(ctx context.Context, a Allowance) (Allowance, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Allowance, error)

	// ClaimPending atomically flips every pending allowance of the employee
	// to paid and returns the claimed rows. Rows already paid are never
	// touched, so a settlement can only ever consume each grant once.
	ClaimPending(ctx context.Context, employeeID string) ([]Allowance, error)
}
