package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"   // waiting for an admin decision
	StatusApproved  Status = "approved"  // will be deducted at the next settlement
	StatusRejected  Status = "rejected"  // terminal
	StatusProcessed Status = "processed" // consumed by a settlement, terminal
)

// AdvanceRequest is a staff-initiated early draw against future salary.
// Lifecycle: pending→approved|rejected by an admin, approved→processed
// only as a side effect of a settlement consuming it.
type AdvanceRequest struct {
	ID          string
	EmployeeID  string
	Amount      decimal.Decimal
	Status      Status
	RequestDate time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeUsername  *string
	EmployeeStaffRole *string
}
