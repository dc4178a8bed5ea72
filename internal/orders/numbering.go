package orders

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	orderNumberPrefix = "DH"
	orderNumberWidth  = 3
)

// NextOrderNumber returns the next sequential order number: one past
// the highest numeric DH suffix currently in use, not a count of
// orders, so deleted numbers are never reissued. An empty collection
// starts at DH001.
func NextOrderNumber(existing []Order) string {
	highest := 0
	for _, o := range existing {
		if !strings.HasPrefix(o.OrderNumber, orderNumberPrefix) {
			continue
		}
		n, err := strconv.Atoi(o.OrderNumber[len(orderNumberPrefix):])
		if err != nil || n <= highest {
			continue
		}
		highest = n
	}
	return fmt.Sprintf("%s%0*d", orderNumberPrefix, orderNumberWidth, highest+1)
}
