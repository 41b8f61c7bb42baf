package payment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestComputeSettlement(t *testing.T) {
	cases := []struct {
		name       string
		baseSalary decimal.Decimal
		advance    decimal.Decimal
		allowances []decimal.Decimal
		wantFinal  decimal.Decimal
		wantBata   decimal.Decimal
	}{
		{
			name:       "salary only",
			baseSalary: d(20000),
			advance:    decimal.Zero,
			allowances: nil,
			wantFinal:  d(20000),
			wantBata:   decimal.Zero,
		},
		{
			name:       "advance deducted",
			baseSalary: d(20000),
			advance:    d(5000),
			allowances: nil,
			wantFinal:  d(15000),
			wantBata:   decimal.Zero,
		},
		{
			name:       "advance and allowances",
			baseSalary: d(20000),
			advance:    d(5000),
			allowances: []decimal.Decimal{d(300), d(700)},
			wantFinal:  d(16000),
			wantBata:   d(1000),
		},
		{
			name:       "deduction exceeds salary plus allowances",
			baseSalary: d(1000),
			advance:    d(2500),
			allowances: []decimal.Decimal{d(200)},
			wantFinal:  d(-1300),
			wantBata:   d(200),
		},
		{
			name:       "zero salary",
			baseSalary: decimal.Zero,
			advance:    decimal.Zero,
			allowances: []decimal.Decimal{d(50)},
			wantFinal:  d(50),
			wantBata:   d(50),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ComputeSettlement(c.baseSalary, c.advance, c.allowances)

			assert.True(t, got.BaseSalary.Equal(c.baseSalary), "base salary %s", got.BaseSalary)
			assert.True(t, got.AdvanceDeduction.Equal(c.advance), "advance deduction %s", got.AdvanceDeduction)
			assert.True(t, got.AllowancePaid.Equal(c.wantBata), "allowance paid %s", got.AllowancePaid)
			assert.True(t, got.FinalPaid.Equal(c.wantFinal), "final paid %s", got.FinalPaid)
		})
	}
}

func TestIsValidMonth(t *testing.T) {
	for _, name := range []string{"January", "March", "December"} {
		assert.True(t, IsValidMonth(name), name)
	}
	for _, name := range []string{"", "march", "Mars", "13"} {
		assert.False(t, IsValidMonth(name), name)
	}
}
