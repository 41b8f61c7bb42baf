package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffpay/staffpay-backend-go/internal/domain/advance"
	"github.com/staffpay/staffpay-backend-go/internal/pkg/database"
)

type advanceRepository struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepository{db: db}
}

func (r *advanceRepository) Create(ctx context.Context, a advance.AdvanceRequest) (advance.AdvanceRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO advance_requests (employee_id, amount, status)
		VALUES ($1, $2, $3)
		RETURNING id, employee_id, amount, status, request_date, created_at, updated_at
	`

	var created advance.AdvanceRequest
	err := q.QueryRow(ctx, query, a.EmployeeID, a.Amount, a.Status).Scan(
		&created.ID, &created.EmployeeID, &created.Amount, &created.Status,
		&created.RequestDate, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return advance.AdvanceRequest{}, fmt.Errorf("failed to create advance request: %w", err)
	}

	return created, nil
}

func (r *advanceRepository) GetByID(ctx context.Context, id string) (advance.AdvanceRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, amount, status, request_date, created_at, updated_at
		FROM advance_requests
		WHERE id = $1
	`

	var a advance.AdvanceRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.EmployeeID, &a.Amount, &a.Status, &a.RequestDate, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return advance.AdvanceRequest{}, advance.ErrAdvanceNotFound
		}
		return advance.AdvanceRequest{}, fmt.Errorf("failed to get advance request: %w", err)
	}

	return a, nil
}

func (r *advanceRepository) List(ctx context.Context) ([]advance.AdvanceRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.amount, a.status, a.request_date, a.created_at, a.updated_at,
			   u.username, u.staff_role
		FROM advance_requests a
		JOIN users u ON u.id = a.employee_id
		ORDER BY a.request_date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list advance requests: %w", err)
	}
	defer rows.Close()

	var requests []advance.AdvanceRequest
	for rows.Next() {
		var a advance.AdvanceRequest
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Amount, &a.Status, &a.RequestDate, &a.CreatedAt, &a.UpdatedAt,
			&a.EmployeeUsername, &a.EmployeeStaffRole,
		); err != nil {
			return nil, fmt.Errorf("failed to scan advance request: %w", err)
		}
		requests = append(requests, a)
	}

	return requests, rows.Err()
}

func (r *advanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]advance.AdvanceRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, amount, status, request_date, created_at, updated_at
		FROM advance_requests
		WHERE employee_id = $1
		ORDER BY request_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list advance requests: %w", err)
	}
	defer rows.Close()

	var requests []advance.AdvanceRequest
	for rows.Next() {
		var a advance.AdvanceRequest
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Amount, &a.Status, &a.RequestDate, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan advance request: %w", err)
		}
		requests = append(requests, a)
	}

	return requests, rows.Err()
}

func (r *advanceRepository) HasOutstanding(ctx context.Context, employeeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM advance_requests
			WHERE employee_id = $1 AND status IN ('pending', 'approved')
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check outstanding advance: %w", err)
	}

	return exists, nil
}

func (r *advanceRepository) Decide(ctx context.Context, id string, decision advance.Status) (advance.AdvanceRequest, error) {
	q := GetQuerier(ctx, r.db)

	// The status guard makes the decision conditional: a request that is
	// already approved, rejected or processed is never flipped again.
	query := `
		UPDATE advance_requests
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING id, employee_id, amount, status, request_date, created_at, updated_at
	`

	var a advance.AdvanceRequest
	err := q.QueryRow(ctx, query, id, decision).Scan(
		&a.ID, &a.EmployeeID, &a.Amount, &a.Status, &a.RequestDate, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Distinguish a missing request from one already decided.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return advance.AdvanceRequest{}, getErr
			}
			return advance.AdvanceRequest{}, advance.ErrAdvanceAlreadyDecided
		}
		return advance.AdvanceRequest{}, fmt.Errorf("failed to decide advance request: %w", err)
	}

	return a, nil
}

func (r *advanceRepository) ClaimOldestApproved(ctx context.Context, employeeID string) (*advance.AdvanceRequest, error) {
	q := GetQuerier(ctx, r.db)

	// Row-locked claim of the earliest approved request. SKIP LOCKED keeps
	// a concurrent settlement from blocking on, or double-consuming, the
	// same row; later approved requests stay untouched for a future cycle.
	query := `
		UPDATE advance_requests
		SET status = 'processed', updated_at = NOW()
		WHERE id = (
			SELECT id FROM advance_requests
			WHERE employee_id = $1 AND status = 'approved'
			ORDER BY request_date ASC, id ASC
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, employee_id, amount, status, request_date, created_at, updated_at
	`

	var a advance.AdvanceRequest
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&a.ID, &a.EmployeeID, &a.Amount, &a.Status, &a.RequestDate, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to claim approved advance: %w", err)
	}

	return &a, nil
}
