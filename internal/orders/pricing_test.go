package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	assert.Equal(t, int64(1500), ParseAmount("1.500"))
	assert.Equal(t, int64(80000), ParseAmount("80000"))
	assert.Equal(t, int64(5000000), ParseAmount(" 5.000.000 "))
	assert.Equal(t, int64(0), ParseAmount("abc"))
	assert.Equal(t, int64(0), ParseAmount("-200"))
	assert.Equal(t, int64(0), ParseAmount(""))
}

func TestParseQuantity(t *testing.T) {
	assert.Equal(t, 50, ParseQuantity("50"))
	assert.Equal(t, 1500, ParseQuantity("1.500"))
	assert.Equal(t, 0, ParseQuantity("x"))
	assert.Equal(t, 0, ParseQuantity("-3"))
}

func TestRecalculateLine(t *testing.T) {
	line := ProductLine{Quantity: 50, UnitPrice: 80000, PrintCost: 20000}
	RecalculateLine(&line)
	assert.Equal(t, int64(100000), line.TotalPrice)
	assert.Equal(t, int64(5000000), line.LineTotal)
}

func TestRecalculateLineZeroQuantity(t *testing.T) {
	line := ProductLine{Quantity: 0, UnitPrice: 80000, PrintCost: 20000}
	RecalculateLine(&line)
	assert.Equal(t, int64(100000), line.TotalPrice)
	assert.Equal(t, int64(0), line.LineTotal)
}

func TestNormalizeLineAssignsID(t *testing.T) {
	line := NormalizeLine(LineDraft{ProductName: "Áo Thun", Quantity: "50", UnitPrice: "80.000", PrintCost: "20.000"})
	assert.NotEmpty(t, line.ID)
	assert.Equal(t, 50, line.Quantity)
	assert.Equal(t, int64(5000000), line.LineTotal)

	kept := NormalizeLine(LineDraft{ID: "p1", ProductName: "Mũ", Quantity: "10"})
	assert.Equal(t, "p1", kept.ID)
}

func TestReconcile(t *testing.T) {
	o := Order{
		Products: []ProductLine{
			{Quantity: 50, UnitPrice: 80000, PrintCost: 20000, LineTotal: 5000000},
		},
		VAT:     10,
		Deposit: 2000000,
		Payment: 3500000,
	}
	Reconcile(&o)
	assert.Equal(t, int64(5000000), o.TotalOrderValue)
	assert.Equal(t, int64(5500000), o.FinalAmount)
	assert.Equal(t, int64(0), o.RemainingDebt)
}

func TestReconcileZeroVAT(t *testing.T) {
	o := Order{
		Products: []ProductLine{{LineTotal: 5000000}},
		Deposit:  1500000,
	}
	Reconcile(&o)
	assert.Equal(t, int64(5000000), o.FinalAmount)
	assert.Equal(t, int64(3500000), o.RemainingDebt)
}

func TestReconcileDebtAllowsNegative(t *testing.T) {
	o := Order{FinalAmount: 1000000, Discount: 200000, Deposit: 500000, Payment: 500000}
	ReconcileDebt(&o)
	assert.Equal(t, int64(-200000), o.RemainingDebt)
}
