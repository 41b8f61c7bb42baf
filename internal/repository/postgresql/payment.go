package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffpay/staffpay-backend-go/internal/domain/payment"
	"github.com/staffpay/staffpay-backend-go/internal/pkg/database"
)

type paymentRepository struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payment.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payments (employee_id, month, year, base_salary, advance_deduction, allowance_paid, final_paid)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, employee_id, month, year, base_salary, advance_deduction, allowance_paid, final_paid, created_at
	`

	var created payment.Payment
	err := q.QueryRow(ctx, query,
		p.EmployeeID, p.Month, p.Year, p.BaseSalary, p.AdvanceDeduction, p.AllowancePaid, p.FinalPaid,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Month, &created.Year,
		&created.BaseSalary, &created.AdvanceDeduction, &created.AllowancePaid, &created.FinalPaid,
		&created.CreatedAt,
	)
	if err != nil {
		// uk_payments_employee_period backs the already-settled guard even
		// when two settlements race past the existence check.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return payment.Payment{}, payment.ErrAlreadySettled
		}
		return payment.Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}

	return created, nil
}

func (r *paymentRepository) ExistsForPeriod(ctx context.Context, employeeID, month string, year int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM payments WHERE employee_id = $1 AND month = $2 AND year = $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, month, year).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payment existence: %w", err)
	}

	return exists, nil
}

func (r *paymentRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, year, base_salary, advance_deduction, allowance_paid, final_paid, created_at
		FROM payments
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []payment.Payment
	for rows.Next() {
		var p payment.Payment
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Month, &p.Year,
			&p.BaseSalary, &p.AdvanceDeduction, &p.AllowancePaid, &p.FinalPaid, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}

func (r *paymentRepository) ListAll(ctx context.Context) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.month, p.year, p.base_salary, p.advance_deduction, p.allowance_paid, p.final_paid, p.created_at,
			   u.username, u.staff_role
		FROM payments p
		JOIN users u ON u.id = p.employee_id
		ORDER BY p.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []payment.Payment
	for rows.Next() {
		var p payment.Payment
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Month, &p.Year,
			&p.BaseSalary, &p.AdvanceDeduction, &p.AllowancePaid, &p.FinalPaid, &p.CreatedAt,
			&p.EmployeeUsername, &p.EmployeeStaffRole,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}
