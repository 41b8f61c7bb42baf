package payment

import "context"

type PaymentRepository interface {
	// Create inserts the payment row. Returns ErrAlreadySettled when a row
	// for the same (employee, month, year) already exists; the table's
	// unique constraint makes this safe under concurrent settlements.
	Create(ctx context.Context, p Payment) (Payment, error)

	ExistsForPeriod(ctx context.Context, employeeID, month string, year int) (bool, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Payment, error)
	ListAll(ctx context.Context) ([]Payment, error)
}
