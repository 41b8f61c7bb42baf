package payment

import "github.com/shopspring/decimal"

// SettlementTotals are the computed monetary figures of one settlement.
type SettlementTotals struct {
	BaseSalary       decimal.Decimal
	AdvanceDeduction decimal.Decimal
	AllowancePaid    decimal.Decimal
	FinalPaid        decimal.Decimal
}

// ComputeSettlement combines the base salary, the consumed advance amount
// and the consumed allowance amounts into the final figure:
//
//	finalPaid = baseSalary - advanceDeduction + sum(allowances)
//
// FinalPaid may be negative when the deduction exceeds salary plus
// allowances; that is a valid business outcome, not an error.
func ComputeSettlement(baseSalary, advanceDeduction decimal.Decimal, allowanceAmounts []decimal.Decimal) SettlementTotals {
	allowancePaid := decimal.Zero
	for _, amount := range allowanceAmounts {
		allowancePaid = allowancePaid.Add(amount)
	}

	return SettlementTotals{
		BaseSalary:       baseSalary,
		AdvanceDeduction: advanceDeduction,
		AllowancePaid:    allowancePaid,
		FinalPaid:        baseSalary.Sub(advanceDeduction).Add(allowancePaid),
	}
}
