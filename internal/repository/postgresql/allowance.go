package postgresql

import (
	"context"
	"fmt"

	"github.com/staffpay/staffpay-backend-go/internal/domain/allowance"
	"github.com/staffpay/staffpay-backend-go/internal/pkg/database"
)

type allowanceRepository struct {
	db *database.DB
}

func NewAllowanceRepository(db *database.DB) allowance.AllowanceRepository {
	return &allowanceRepository{db: db}
}

func (r *allowanceRepository) Create(ctx context.Context, a allowance.Allowance) (allowance.Allowance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO allowances (employee_id, amount, note, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, amount, note, status, created_at
	`

	var created allowance.Allowance
	err := q.QueryRow(ctx, query, a.EmployeeID, a.Amount, a.Note, a.Status).Scan(
		&created.ID, &created.EmployeeID, &created.Amount, &created.Note, &created.Status, &created.CreatedAt,
	)
	if err != nil {
		return allowance.Allowance{}, fmt.Errorf("failed to create allowance: %w", err)
	}

	return created, nil
}

func (r *allowanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]allowance.Allowance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, amount, note, status, created_at
		FROM allowances
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list allowances: %w", err)
	}
	defer rows.Close()

	var allowances []allowance.Allowance
	for rows.Next() {
		var a allowance.Allowance
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Amount, &a.Note, &a.Status, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan allowance: %w", err)
		}
		allowances = append(allowances, a)
	}

	return allowances, rows.Err()
}

func (r *allowanceRepository) ClaimPending(ctx context.Context, employeeID string) ([]allowance.Allowance, error) {
	q := GetQuerier(ctx, r.db)

	// Single conditional update: only rows still pending are flipped, so a
	// concurrent settlement cannot pay the same grant twice.
	query := `
		UPDATE allowances
		SET status = 'paid'
		WHERE employee_id = $1 AND status = 'pending'
		RETURNING id, employee_id, amount, note, status, created_at
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to claim pending allowances: %w", err)
	}
	defer rows.Close()

	var claimed []allowance.Allowance
	for rows.Next() {
		var a allowance.Allowance
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Amount, &a.Note, &a.Status, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan claimed allowance: %w", err)
		}
		claimed = append(claimed, a)
	}

	return claimed, rows.Err()
}
