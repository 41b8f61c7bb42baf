package payment

import "context"

type PaymentService interface {
	// Settle closes one pay period for one staff member: it deducts the
	// oldest approved advance (if any), pays out every pending allowance,
	// writes the immutable payment row and marks the consumed records so
	// no later cycle can count them again. All effects commit or roll back
	// together.
	Settle(ctx context.Context, req SettleRequest) (PaymentResponse, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]PaymentResponse, error)
	ListAll(ctx context.Context) ([]PaymentResponse, error)
}
