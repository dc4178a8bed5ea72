// Package customers derives the customer roster from the order
// collection. There is no separate customer table: every derivation
// starts from the orders, so a rename or deletion there is reflected
// here on the next call.
package customers

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/uniformdn/orderdesk/internal/orders"
	"github.com/uniformdn/orderdesk/internal/shared"
)

// Customer is one derived roster entry, keyed by phone number.
type Customer struct {
	CustomerCode     string `json:"customer_code"`
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	TotalOrders      int    `json:"total_orders"`
	TotalSpent       int64  `json:"total_spent"`
	MembershipPoints int    `json:"membership_points"`
}

// pointsWindow is how far back an order still earns membership points.
const pointsWindow = 1 // years

// Aggregate groups orders by phone number and derives one customer per
// group. Orders with a blank phone belong to no customer. Customer
// codes are assigned by Vietnamese-collated name order, so they are
// stable across repeated runs over the same data; the returned slice
// is sorted by total spent, highest first.
func Aggregate(list []orders.Order, now time.Time) []Customer {
	groups := map[string][]orders.Order{}
	var phones []string
	for _, o := range list {
		phone := strings.TrimSpace(o.ContactNumber)
		if phone == "" {
			continue
		}
		if _, seen := groups[phone]; !seen {
			phones = append(phones, phone)
		}
		groups[phone] = append(groups[phone], o)
	}

	out := make([]Customer, 0, len(phones))
	for _, phone := range phones {
		out = append(out, summarize(phone, groups[phone], now))
	}

	// Codes follow name order; display order follows spend.
	coll := collate.New(language.Vietnamese)
	sort.SliceStable(out, func(i, j int) bool {
		return coll.CompareString(out[i].Name, out[j].Name) < 0
	})
	for i := range out {
		out[i].CustomerCode = fmt.Sprintf("KH%03d", i+1)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalSpent > out[j].TotalSpent
	})
	return out
}

// summarize folds one phone group into a roster entry. A group that is
// all placeholders is a saved customer with no orders yet: it keeps its
// name and phone with every total at zero.
func summarize(phone string, group []orders.Order, now time.Time) Customer {
	sort.SliceStable(group, func(i, j int) bool {
		return group[i].OrderDate.After(group[j].OrderDate)
	})
	c := Customer{
		Phone: phone,
		Name:  group[0].CustomerName,
	}
	// Points come from the newest order inside the window, not the
	// newest order overall; an out-of-window latest order does not
	// forfeit points earned by an older in-window one.
	var newestInWindow *orders.Order
	for i := range group {
		o := group[i]
		if o.IsPlaceholder {
			continue
		}
		c.TotalOrders++
		c.TotalSpent += o.FinalAmount
		if newestInWindow == nil && inPointsWindow(o.OrderDate, now) {
			newestInWindow = &group[i]
		}
	}
	if newestInWindow != nil {
		c.MembershipPoints = int(math.Floor(0.01 * float64(newestInWindow.FinalAmount)))
	}
	return c
}

// inPointsWindow reports whether an order date falls inside the
// rolling one-year window ending yesterday. Comparison is on truncated
// dates, so both endpoints are inclusive.
func inPointsWindow(orderDate, now time.Time) bool {
	end := shared.DateOnly(now).AddDate(0, 0, -1)
	start := end.AddDate(-pointsWindow, 0, 0)
	d := shared.DateOnly(orderDate)
	return !d.Before(start) && !d.After(end)
}
