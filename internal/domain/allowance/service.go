package allowance

import "context"

type AllowanceService interface {
	// Grant appends a pending allowance to a staff account. The settlement
	// engine pays it out on its next run for that employee.
	Grant(ctx context.Context, req GrantAllowanceRequest) (AllowanceResponse, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]AllowanceResponse, error)
}
