package orders

import (
	"time"
)

// OrderStatus is the production state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusUrgent     OrderStatus = "URGENT"
	StatusInProgress OrderStatus = "IN_PROGRESS"
	StatusCompleted  OrderStatus = "COMPLETED"
	StatusDelivered  OrderStatus = "DELIVERED"
)

// Label returns the Vietnamese display name used on exports and
// printable documents.
func (s OrderStatus) Label() string {
	switch s {
	case StatusPending:
		return "Cần làm"
	case StatusUrgent:
		return "Gấp"
	case StatusInProgress:
		return "Đang làm"
	case StatusCompleted:
		return "Đã xong"
	case StatusDelivered:
		return "Đã giao"
	}
	return string(s)
}

// ============================================================================
// PRODUCT LINE
// ============================================================================

// ProductLine is one row of an order's product grid. TotalPrice and
// LineTotal are derived fields; they are recomputed from quantity,
// unit price and print cost, never edited independently.
type ProductLine struct {
	ID          string `json:"id"`
	ProductName string `json:"product_name"`
	Form        string `json:"form"`
	Size        string `json:"size"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit"`
	FabricColor string `json:"fabric_color"`
	FabricCode  string `json:"fabric_code"`
	RibColor    string `json:"rib_color"`
	RibThread   string `json:"rib_thread"`
	PrintType   string `json:"print_type"`
	UnitPrice   int64  `json:"unit_price"`
	PrintCost   int64  `json:"print_cost"`
	TotalPrice  int64  `json:"total_price"`
	LineTotal   int64  `json:"line_total"`
	Notes       string `json:"notes"`
}

// ============================================================================
// ORDER
// ============================================================================

// Order is the canonical record owned by the Store. All money fields
// are integer VND; the domain has no fractional minor units.
type Order struct {
	ID                     string        `json:"id"`
	OrderNumber            string        `json:"order_number"`
	OrderName              string        `json:"order_name"`
	OrderDate              time.Time     `json:"order_date"`
	CustomerName           string        `json:"customer_name"`
	ContactNumber          string        `json:"contact_number"`
	Products               []ProductLine `json:"products"`
	TotalOrderValue        int64         `json:"total_order_value"`
	VAT                    float64       `json:"vat"`
	FinalAmount            int64         `json:"final_amount"`
	Discount               int64         `json:"discount"`
	Deposit                int64         `json:"deposit"`
	Payment                int64         `json:"payment"`
	RemainingDebt          int64         `json:"remaining_debt"`
	ExecutionDays          int           `json:"execution_days"`
	ExpectedCompletionDate time.Time     `json:"expected_completion_date"`
	ActualCompletionDate   time.Time     `json:"actual_completion_date"`
	Status                 OrderStatus   `json:"status"`
	Notes                  string        `json:"notes"`
	Collaborator           string        `json:"collaborator,omitempty"`
	DiscountApplied        bool          `json:"discount_applied"`
	DemoImage              string        `json:"demo_image,omitempty"`
	IsPlaceholder          bool          `json:"is_placeholder,omitempty"`
}

// ============================================================================
// DRAFTS (form payloads)
// ============================================================================

// LineDraft carries one raw product grid row. The numeric columns
// arrive as loose display text ("1.500"); anything unparsable is
// coerced to zero, never rejected.
type LineDraft struct {
	ID          string `json:"id,omitempty"`
	ProductName string `json:"product_name"`
	Form        string `json:"form"`
	Size        string `json:"size"`
	Quantity    string `json:"quantity"`
	Unit        string `json:"unit"`
	FabricColor string `json:"fabric_color"`
	FabricCode  string `json:"fabric_code"`
	RibColor    string `json:"rib_color"`
	RibThread   string `json:"rib_thread"`
	PrintType   string `json:"print_type"`
	UnitPrice   string `json:"unit_price"`
	PrintCost   string `json:"print_cost"`
	Notes       string `json:"notes"`
}

// OrderDraft is the full-form payload for creating or editing an
// order. Rows without a product name or a positive quantity are
// dropped at commit time.
type OrderDraft struct {
	OrderName              string      `json:"order_name" validate:"required,max=200"`
	OrderDate              time.Time   `json:"order_date" validate:"required"`
	CustomerName           string      `json:"customer_name" validate:"required,max=200"`
	ContactNumber          string      `json:"contact_number" validate:"omitempty,max=20"`
	Products               []LineDraft `json:"products" validate:"max=15,dive"`
	VAT                    float64     `json:"vat" validate:"gte=0"`
	Discount               int64       `json:"discount" validate:"gte=0"`
	Deposit                int64       `json:"deposit" validate:"gte=0"`
	Payment                int64       `json:"payment" validate:"gte=0"`
	ExecutionDays          int         `json:"execution_days" validate:"gte=0"`
	ExpectedCompletionDate time.Time   `json:"expected_completion_date"`
	ActualCompletionDate   time.Time   `json:"actual_completion_date"`
	Status                 OrderStatus `json:"status" validate:"required"`
	Notes                  string      `json:"notes"`
	Collaborator           string      `json:"collaborator"`
	DiscountApplied        bool        `json:"discount_applied"`
	DemoImage              string      `json:"demo_image"`
}
