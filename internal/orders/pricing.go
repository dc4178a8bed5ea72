package orders

import (
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// ParseAmount converts loose money input to integer VND. Vietnamese
// thousand separators are stripped first; parse failures and negative
// values coerce to zero.
func ParseAmount(input string) int64 {
	v, err := cast.ToInt64E(strings.ReplaceAll(strings.TrimSpace(input), ".", ""))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ParseQuantity converts loose quantity input the same way.
func ParseQuantity(input string) int {
	v, err := cast.ToIntE(strings.ReplaceAll(strings.TrimSpace(input), ".", ""))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// RecalculateLine derives the two computed money fields:
// totalPrice = unitPrice + printCost, lineTotal = totalPrice * quantity.
func RecalculateLine(line *ProductLine) {
	line.TotalPrice = line.UnitPrice + line.PrintCost
	line.LineTotal = line.TotalPrice * int64(line.Quantity)
}

// NormalizeLine builds a ProductLine from one grid row, coercing the
// numeric columns and recomputing the derived totals.
func NormalizeLine(d LineDraft) ProductLine {
	line := ProductLine{
		ID:          d.ID,
		ProductName: d.ProductName,
		Form:        d.Form,
		Size:        d.Size,
		Quantity:    ParseQuantity(d.Quantity),
		Unit:        d.Unit,
		FabricColor: d.FabricColor,
		FabricCode:  d.FabricCode,
		RibColor:    d.RibColor,
		RibThread:   d.RibThread,
		PrintType:   d.PrintType,
		UnitPrice:   ParseAmount(d.UnitPrice),
		PrintCost:   ParseAmount(d.PrintCost),
		Notes:       d.Notes,
	}
	if line.ID == "" {
		line.ID = uuid.NewString()
	}
	RecalculateLine(&line)
	return line
}

// Reconcile recomputes an order's financial fields from its product
// lines and the VAT/discount/deposit/payment inputs. This is the full
// form-edit path; the quick payment and deposit updates go through
// ReconcileDebt instead.
func Reconcile(o *Order) {
	var total int64
	for _, p := range o.Products {
		total += p.LineTotal
	}
	o.TotalOrderValue = total
	o.FinalAmount = int64(math.Round(float64(total) * (1 + o.VAT/100)))
	o.RemainingDebt = o.FinalAmount - o.Discount - o.Deposit - o.Payment
}

// ReconcileDebt recomputes only the remaining debt, holding every
// other financial field fixed. The result may be negative on
// overpayment; it is shown as-is, never clamped.
func ReconcileDebt(o *Order) {
	o.RemainingDebt = o.FinalAmount - o.Discount - o.Deposit - o.Payment
}
