package orders

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/uniformdn/orderdesk/internal/shared"
)

const placeholderNotes = "Placeholder for new customer creation"

// Store owns the in-memory order collection and the collaborator set.
// Every mutation runs synchronously on the caller's goroutine; the
// system has exactly one mutator at a time, so derived views read
// their own writes without any coordination.
type Store struct {
	orders        []Order
	collaborators []string
	draftID       string // active new-customer placeholder, "" when none

	validate *validator.Validate
	now      func() time.Time
}

// NewStore seeds a store with existing orders. The collaborator set is
// initialised from the seed orders plus any extra names and only ever
// grows from there.
func NewStore(seed []Order, collaborators ...string) *Store {
	s := &Store{
		validate: validator.New(),
		now:      time.Now,
	}
	s.orders = append(s.orders, seed...)
	for _, name := range collaborators {
		s.addCollaborator(name)
	}
	for _, o := range seed {
		s.addCollaborator(o.Collaborator)
	}
	return s
}

// Orders returns a copy of the full collection, placeholders included.
// Listing surfaces go through Filter, which excludes them.
func (s *Store) Orders() []Order {
	return append([]Order(nil), s.orders...)
}

// ActiveOrders returns the non-placeholder orders, the set every
// financial view is computed over.
func (s *Store) ActiveOrders() []Order {
	var out []Order
	for _, o := range s.orders {
		if !o.IsPlaceholder {
			out = append(out, o)
		}
	}
	return out
}

// Collaborators returns the known seller names.
func (s *Store) Collaborators() []string {
	return append([]string(nil), s.collaborators...)
}

// DraftPending reports whether a new-customer placeholder is awaiting
// its first real order.
func (s *Store) DraftPending() bool {
	return s.draftID != ""
}

// ============================================================================
// ORDER MUTATIONS
// ============================================================================

// CreateOrder commits a new order: the draft is validated, its grid
// rows normalized, financial and schedule fields reconciled, and a
// fresh order number allocated. The number is assigned exactly once
// and never changes afterwards.
//
// An order for an unknown, non-empty phone number is rejected with
// ErrCustomerNotSaved until the customer record has been saved (an
// active new-customer draft counts as saved).
func (s *Store) CreateOrder(d OrderDraft) (Order, error) {
	if err := s.validate.Struct(d); err != nil {
		return Order{}, fmt.Errorf("validate order: %w", err)
	}
	phone := strings.TrimSpace(d.ContactNumber)
	if phone != "" && !s.phoneKnown(phone) {
		return Order{}, shared.ErrCustomerNotSaved
	}

	o := buildOrder(d)
	o.ID = uuid.NewString()
	o.OrderNumber = NextOrderNumber(s.orders)

	s.consumeDraft(o.ContactNumber)
	s.addCollaborator(o.Collaborator)
	s.orders = append([]Order{o}, s.orders...)
	return o, nil
}

// EditOrder replaces the identified order with the reconciled draft,
// preserving its identity and original order number.
func (s *Store) EditOrder(id string, d OrderDraft) (Order, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Order{}, fmt.Errorf("edit order %s: %w", id, shared.ErrNotFound)
	}
	if err := s.validate.Struct(d); err != nil {
		return Order{}, fmt.Errorf("validate order: %w", err)
	}

	o := buildOrder(d)
	o.ID = s.orders[idx].ID
	o.OrderNumber = s.orders[idx].OrderNumber

	s.consumeDraft(o.ContactNumber)
	s.addCollaborator(o.Collaborator)
	// consumeDraft may have removed an order before idx
	idx = s.indexOf(id)
	s.orders[idx] = o
	return o, nil
}

// DeleteOrder removes an order by ID. Confirmation is the caller's
// responsibility; see the DeleteOrder command for the gated form.
func (s *Store) DeleteOrder(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("delete order %s: %w", id, shared.ErrNotFound)
	}
	s.orders = append(s.orders[:idx], s.orders[idx+1:]...)
	return nil
}

// UpdatePayment sets the payment amount and recomputes only the
// remaining debt, holding every other financial field fixed.
func (s *Store) UpdatePayment(id string, amount int64) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("update payment %s: %w", id, shared.ErrNotFound)
	}
	s.orders[idx].Payment = amount
	ReconcileDebt(&s.orders[idx])
	return nil
}

// UpdateDeposit sets the deposit amount; same partial reconciliation
// as UpdatePayment.
func (s *Store) UpdateDeposit(id string, amount int64) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("update deposit %s: %w", id, shared.ErrNotFound)
	}
	s.orders[idx].Deposit = amount
	ReconcileDebt(&s.orders[idx])
	return nil
}

// UpdateStatus sets the production status. No other field changes.
func (s *Store) UpdateStatus(id string, status OrderStatus) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("update status %s: %w", id, shared.ErrNotFound)
	}
	s.orders[idx].Status = status
	return nil
}

// SetDiscountApplied sets the commission-discount flag on one order.
func (s *Store) SetDiscountApplied(id string, applied bool) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("set discount flag %s: %w", id, shared.ErrNotFound)
	}
	s.orders[idx].DiscountApplied = applied
	return nil
}

// BulkSetDiscountApplied applies a mapping of order ID to flag in one
// pass. IDs not present in the store are skipped.
func (s *Store) BulkSetDiscountApplied(updates map[string]bool) {
	for i := range s.orders {
		if applied, ok := updates[s.orders[i].ID]; ok {
			s.orders[i].DiscountApplied = applied
		}
	}
}

// RenameCustomer updates the denormalized customer name on every order
// sharing the phone number and returns how many records changed.
func (s *Store) RenameCustomer(phone, newName string) int {
	changed := 0
	for i := range s.orders {
		if s.orders[i].ContactNumber == phone {
			s.orders[i].CustomerName = newName
			changed++
		}
	}
	return changed
}

// ============================================================================
// NEW-CUSTOMER DRAFT
// ============================================================================

// BeginCustomerDraft reserves a customer record mid-form by inserting
// a zero-value placeholder order for the candidate phone number. The
// call is a silent no-op when a draft is already active or the phone
// is empty or already known; the caller is expected to have looked the
// phone up first.
func (s *Store) BeginCustomerDraft(name, phone string) {
	if s.draftID != "" || strings.TrimSpace(phone) == "" || s.phoneKnown(phone) {
		return
	}
	placeholder := Order{
		ID:            uuid.NewString(),
		OrderNumber:   "N/A",
		OrderName:     "PLACEHOLDER",
		OrderDate:     shared.DateOnly(s.now()),
		CustomerName:  name,
		ContactNumber: phone,
		Status:        StatusPending,
		Notes:         placeholderNotes,
		IsPlaceholder: true,
	}
	s.orders = append(s.orders, placeholder)
	s.draftID = placeholder.ID
}

// CancelCustomerDraft abandons the in-flight customer creation,
// removing its placeholder. No-op when nothing is pending.
func (s *Store) CancelCustomerDraft() {
	if s.draftID == "" {
		return
	}
	if idx := s.indexOf(s.draftID); idx >= 0 {
		s.orders = append(s.orders[:idx], s.orders[idx+1:]...)
	}
	s.draftID = ""
}

// consumeDraft retires the active placeholder once a real order for
// the same phone number is committed.
func (s *Store) consumeDraft(phone string) {
	if s.draftID == "" {
		return
	}
	idx := s.indexOf(s.draftID)
	if idx >= 0 && s.orders[idx].ContactNumber == phone {
		s.orders = append(s.orders[:idx], s.orders[idx+1:]...)
		s.draftID = ""
	}
}

// ============================================================================
// LOOKUPS
// ============================================================================

// Get returns an order by ID.
func (s *Store) Get(id string) (Order, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Order{}, fmt.Errorf("order %s: %w", id, shared.ErrNotFound)
	}
	return s.orders[idx], nil
}

// FindByNumber looks an order up by exact, case-insensitive order
// number. The printable documents resolve orders this way.
func (s *Store) FindByNumber(number string) (Order, error) {
	want := strings.ToLower(strings.TrimSpace(number))
	for _, o := range s.orders {
		if strings.ToLower(o.OrderNumber) == want {
			return o, nil
		}
	}
	return Order{}, fmt.Errorf("order number %q: %w", number, shared.ErrNotFound)
}

// Recent returns the n most recent non-placeholder orders, used for
// the pick-or-type shortcut in the print flows.
func (s *Store) Recent(n int) []Order {
	out := Filter(s.orders, "", StatusAll)
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// ============================================================================
// INTERNAL
// ============================================================================

func (s *Store) indexOf(id string) int {
	for i, o := range s.orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) phoneKnown(phone string) bool {
	for _, o := range s.orders {
		if o.ContactNumber == phone {
			return true
		}
	}
	return false
}

func (s *Store) addCollaborator(name string) {
	if name == "" {
		return
	}
	for _, existing := range s.collaborators {
		if existing == name {
			return
		}
	}
	s.collaborators = append(s.collaborators, name)
}

// buildOrder turns a validated draft into a reconciled order record:
// empty grid rows are dropped, line totals and financials recomputed,
// and a missing delivery date derived from the execution days.
func buildOrder(d OrderDraft) Order {
	o := Order{
		OrderName:              d.OrderName,
		OrderDate:              shared.DateOnly(d.OrderDate),
		CustomerName:           d.CustomerName,
		ContactNumber:          strings.TrimSpace(d.ContactNumber),
		VAT:                    d.VAT,
		Discount:               d.Discount,
		Deposit:                d.Deposit,
		Payment:                d.Payment,
		ExecutionDays:          d.ExecutionDays,
		ExpectedCompletionDate: d.ExpectedCompletionDate,
		ActualCompletionDate:   d.ActualCompletionDate,
		Status:                 d.Status,
		Notes:                  d.Notes,
		Collaborator:           d.Collaborator,
		DiscountApplied:        d.DiscountApplied,
		DemoImage:              d.DemoImage,
	}
	for _, row := range d.Products {
		line := NormalizeLine(row)
		if line.ProductName == "" || line.Quantity <= 0 {
			continue
		}
		o.Products = append(o.Products, line)
	}
	if !o.ExpectedCompletionDate.IsZero() {
		o.ExpectedCompletionDate = shared.DateOnly(o.ExpectedCompletionDate)
	} else {
		o.ExpectedCompletionDate = ExpectedCompletion(o.OrderDate, o.ExecutionDays)
	}
	if !o.ActualCompletionDate.IsZero() {
		o.ActualCompletionDate = shared.DateOnly(o.ActualCompletionDate)
	}
	Reconcile(&o)
	return o
}
