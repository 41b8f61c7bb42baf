package allowance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "pending" // waiting to be folded into the next settlement
	StatusPaid    Status = "paid"    // consumed by a settlement, terminal
)

// Allowance is one ad-hoc "bata" grant. Rows are append-only; the only
// mutation ever applied is the pending→paid flip done by a settlement.
type Allowance struct {
	ID         string
	EmployeeID string
	Amount     decimal.Decimal
	Note       *string
	Status     Status
	CreatedAt  time.Time
}
