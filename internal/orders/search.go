package orders

import (
	"sort"
	"strings"
)

// StatusAll matches every status in Filter.
const StatusAll OrderStatus = ""

// Filter returns the non-placeholder orders matching a free-text query
// and a status filter, newest order date first. The query is a
// case-insensitive substring match against order number, order name,
// customer name and collaborator.
func Filter(list []Order, query string, status OrderStatus) []Order {
	q := strings.ToLower(query)
	var out []Order
	for _, o := range list {
		if o.IsPlaceholder {
			continue
		}
		if status != StatusAll && o.Status != status {
			continue
		}
		if q != "" && !matchesQuery(o, q) {
			continue
		}
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderDate.After(out[j].OrderDate)
	})
	return out
}

func matchesQuery(o Order, q string) bool {
	for _, field := range []string{o.OrderNumber, o.OrderName, o.CustomerName, o.Collaborator} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
