// Package insights computes the business report and the per-seller
// commission view. Everything here is a pure fold over the order
// collection; nothing is cached or persisted.
package insights

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/uniformdn/orderdesk/internal/orders"
	"github.com/uniformdn/orderdesk/internal/shared"
)

// unknownCollaborator groups orders sold without a named seller.
const unknownCollaborator = "Chưa xác định"

// ============================================================================
// PERIODS
// ============================================================================

// Period is an inclusive date range. A zero Start or End leaves that
// side open, so the zero Period matches everything.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether a date falls inside the period, comparing
// truncated dates on both sides.
func (p Period) Contains(t time.Time) bool {
	d := shared.DateOnly(t)
	if !p.Start.IsZero() && d.Before(shared.DateOnly(p.Start)) {
		return false
	}
	if !p.End.IsZero() && d.After(shared.DateOnly(p.End)) {
		return false
	}
	return true
}

// Preset names a commonly requested reporting range.
type Preset string

const (
	PresetThisMonth    Preset = "THIS_MONTH"
	PresetLastMonth    Preset = "LAST_MONTH"
	PresetTwoMonthsAgo Preset = "TWO_MONTHS_AGO"
	PresetLastQuarter  Preset = "LAST_QUARTER"
	PresetFirstHalf    Preset = "FIRST_HALF"
	PresetSecondHalf   Preset = "SECOND_HALF"
	PresetLastYear     Preset = "LAST_YEAR"
)

// PresetPeriod resolves a preset against the current time. Unknown
// presets resolve to the open period.
func PresetPeriod(p Preset, now time.Time) Period {
	y, m, _ := now.Date()
	monthStart := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	switch p {
	case PresetThisMonth:
		return Period{Start: monthStart, End: monthStart.AddDate(0, 1, -1)}
	case PresetLastMonth:
		start := monthStart.AddDate(0, -1, 0)
		return Period{Start: start, End: monthStart.AddDate(0, 0, -1)}
	case PresetTwoMonthsAgo:
		start := monthStart.AddDate(0, -2, 0)
		return Period{Start: start, End: monthStart.AddDate(0, -1, -1)}
	case PresetLastQuarter:
		quarterStart := time.Date(y, ((m-1)/3)*3+1, 1, 0, 0, 0, 0, time.UTC)
		start := quarterStart.AddDate(0, -3, 0)
		return Period{Start: start, End: quarterStart.AddDate(0, 0, -1)}
	case PresetFirstHalf:
		return Period{
			Start: time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(y, time.June, 30, 0, 0, 0, 0, time.UTC),
		}
	case PresetSecondHalf:
		return Period{
			Start: time.Date(y, time.July, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(y, time.December, 31, 0, 0, 0, 0, time.UTC),
		}
	case PresetLastYear:
		return Period{
			Start: time.Date(y-1, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(y-1, time.December, 31, 0, 0, 0, 0, time.UTC),
		}
	}
	return Period{}
}

// ============================================================================
// HEADLINE SUMMARY
// ============================================================================

// Summary is the headline financial rollup shown on the dashboard and
// on the per-seller view.
type Summary struct {
	TotalOrders  int   `json:"total_orders"`
	TotalRevenue int64 `json:"total_revenue"`
	TotalDeposit int64 `json:"total_deposit"`
	TotalDebt    int64 `json:"total_debt"`
}

// Summarize folds the collection into the headline numbers.
// Placeholder orders carry no financial weight and are skipped.
func Summarize(list []orders.Order) Summary {
	var s Summary
	for _, o := range list {
		if o.IsPlaceholder {
			continue
		}
		s.TotalOrders++
		s.TotalRevenue += o.FinalAmount
		s.TotalDeposit += o.Deposit
		s.TotalDebt += o.RemainingDebt
	}
	return s
}

// ============================================================================
// BUSINESS REPORT
// ============================================================================

// ProductStat is one aggregated product row, keyed by name and unit.
type ProductStat struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Financials is the report-level money breakdown. Paid combines
// deposits and direct payments; VAT is the spread between final
// amounts and pre-tax totals.
type Financials struct {
	Revenue  int64 `json:"revenue"`
	Paid     int64 `json:"paid"`
	Debt     int64 `json:"debt"`
	Discount int64 `json:"discount"`
	VAT      int64 `json:"vat"`
}

// CollaboratorRevenue is the revenue attributed to one seller.
type CollaboratorRevenue struct {
	Name       string `json:"name"`
	OrderCount int    `json:"order_count"`
	Revenue    int64  `json:"revenue"`
}

// LateDelivery is one order completed after its expected date.
type LateDelivery struct {
	OrderNumber string    `json:"order_number"`
	OrderName   string    `json:"order_name"`
	Expected    time.Time `json:"expected"`
	Actual      time.Time `json:"actual"`
	DaysLate    int       `json:"days_late"`
}

// Report is the full business report for one period.
type Report struct {
	Period        Period                `json:"period"`
	ProductStats  []ProductStat         `json:"product_stats"`
	TotalQuantity int                   `json:"total_quantity"`
	Financials    Financials            `json:"financials"`
	DebtOrders    []orders.Order        `json:"debt_orders"`
	Collaborators []CollaboratorRevenue `json:"collaborators"`
	LateList      []LateDelivery        `json:"late_list"`
}

// BuildReport aggregates every order whose order date falls inside the
// period. Product rows are keyed by "name (unit)" so the same garment
// in different units stays separate; rows sort by quantity, highest
// first.
func BuildReport(list []orders.Order, period Period) Report {
	r := Report{Period: period}

	productQty := map[string]int{}
	var productKeys []string
	collabRevenue := map[string]*CollaboratorRevenue{}
	var collabKeys []string

	for _, o := range list {
		if o.IsPlaceholder || !period.Contains(o.OrderDate) {
			continue
		}

		for _, p := range o.Products {
			key := productKey(p)
			if _, seen := productQty[key]; !seen {
				productKeys = append(productKeys, key)
			}
			productQty[key] += p.Quantity
			r.TotalQuantity += p.Quantity
		}

		r.Financials.Revenue += o.FinalAmount
		r.Financials.Paid += o.Deposit + o.Payment
		r.Financials.Debt += o.RemainingDebt
		r.Financials.Discount += o.Discount
		r.Financials.VAT += o.FinalAmount - o.TotalOrderValue

		if o.RemainingDebt > 0 {
			r.DebtOrders = append(r.DebtOrders, o)
		}

		seller := o.Collaborator
		if strings.TrimSpace(seller) == "" {
			seller = unknownCollaborator
		}
		if _, seen := collabRevenue[seller]; !seen {
			collabKeys = append(collabKeys, seller)
			collabRevenue[seller] = &CollaboratorRevenue{Name: seller}
		}
		collabRevenue[seller].OrderCount++
		collabRevenue[seller].Revenue += o.FinalAmount

		if late, days := lateBy(o); late {
			r.LateList = append(r.LateList, LateDelivery{
				OrderNumber: o.OrderNumber,
				OrderName:   o.OrderName,
				Expected:    o.ExpectedCompletionDate,
				Actual:      o.ActualCompletionDate,
				DaysLate:    days,
			})
		}
	}

	for _, key := range productKeys {
		r.ProductStats = append(r.ProductStats, ProductStat{Name: key, Quantity: productQty[key]})
	}
	sort.SliceStable(r.ProductStats, func(i, j int) bool {
		return r.ProductStats[i].Quantity > r.ProductStats[j].Quantity
	})

	for _, key := range collabKeys {
		r.Collaborators = append(r.Collaborators, *collabRevenue[key])
	}
	sort.SliceStable(r.Collaborators, func(i, j int) bool {
		return r.Collaborators[i].Revenue > r.Collaborators[j].Revenue
	})

	sort.SliceStable(r.DebtOrders, func(i, j int) bool {
		return r.DebtOrders[i].RemainingDebt > r.DebtOrders[j].RemainingDebt
	})
	return r
}

// ============================================================================
// COLLABORATOR VIEW
// ============================================================================

// CollaboratorReport is the commission view for one seller: their
// orders in the period plus the headline rollup over them.
type CollaboratorReport struct {
	Collaborator string         `json:"collaborator"`
	Period       Period         `json:"period"`
	Summary      Summary        `json:"summary"`
	Orders       []orders.Order `json:"orders"`
}

// BuildCollaboratorReport filters the collection to one seller's
// orders inside the period, newest first.
func BuildCollaboratorReport(list []orders.Order, collaborator string, period Period) CollaboratorReport {
	cr := CollaboratorReport{Collaborator: collaborator, Period: period}
	for _, o := range list {
		if o.IsPlaceholder || o.Collaborator != collaborator || !period.Contains(o.OrderDate) {
			continue
		}
		cr.Orders = append(cr.Orders, o)
	}
	sort.SliceStable(cr.Orders, func(i, j int) bool {
		return cr.Orders[i].OrderDate.After(cr.Orders[j].OrderDate)
	})
	cr.Summary = Summarize(cr.Orders)
	return cr
}

func productKey(p orders.ProductLine) string {
	unit := p.Unit
	if strings.TrimSpace(unit) == "" {
		unit = "N/A"
	}
	return fmt.Sprintf("%s (%s)", p.ProductName, unit)
}

func lateBy(o orders.Order) (bool, int) {
	if o.ExpectedCompletionDate.IsZero() || o.ActualCompletionDate.IsZero() {
		return false, 0
	}
	days := shared.DaysBetween(o.ExpectedCompletionDate, o.ActualCompletionDate)
	if days <= 0 {
		return false, 0
	}
	return true, days
}
