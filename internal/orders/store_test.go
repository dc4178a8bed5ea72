package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniformdn/orderdesk/internal/shared"
)

func testDraft(mutate ...func(*OrderDraft)) OrderDraft {
	d := OrderDraft{
		OrderName:     "In áo thun sự kiện",
		OrderDate:     date("2025-10-01"),
		CustomerName:  "Nguyễn Văn A",
		ContactNumber: "",
		Products: []LineDraft{
			{ProductName: "Áo Thun Cổ Tròn", Quantity: "50", UnitPrice: "80.000", PrintCost: "20.000", Unit: "Cái"},
		},
		VAT:           10,
		ExecutionDays: 9,
		Status:        StatusPending,
	}
	for _, m := range mutate {
		m(&d)
	}
	return d
}

func TestCreateOrder(t *testing.T) {
	s := NewStore(nil)
	o, err := s.CreateOrder(testDraft())
	require.NoError(t, err)

	assert.Equal(t, "DH001", o.OrderNumber)
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, int64(5000000), o.TotalOrderValue)
	assert.Equal(t, int64(5500000), o.FinalAmount)
	assert.Equal(t, int64(5500000), o.RemainingDebt)
	assert.Equal(t, date("2025-10-10"), o.ExpectedCompletionDate)
	assert.Len(t, s.Orders(), 1)
}

func TestCreateOrderDropsEmptyRows(t *testing.T) {
	s := NewStore(nil)
	o, err := s.CreateOrder(testDraft(func(d *OrderDraft) {
		d.Products = append(d.Products,
			LineDraft{ProductName: "", Quantity: "10"},
			LineDraft{ProductName: "Mũ", Quantity: "0"},
		)
	}))
	require.NoError(t, err)
	assert.Len(t, o.Products, 1)
}

func TestCreateOrderValidation(t *testing.T) {
	s := NewStore(nil)
	_, err := s.CreateOrder(testDraft(func(d *OrderDraft) { d.OrderName = "" }))
	assert.Error(t, err)
	assert.Empty(t, s.Orders())
}

func TestCreateOrderUnknownCustomerRejected(t *testing.T) {
	s := NewStore(nil)
	_, err := s.CreateOrder(testDraft(func(d *OrderDraft) { d.ContactNumber = "0901234567" }))
	assert.ErrorIs(t, err, shared.ErrCustomerNotSaved)
}

func TestCreateOrderKnownCustomerAccepted(t *testing.T) {
	s := NewStore([]Order{{ID: "1", OrderNumber: "DH001", ContactNumber: "0901234567"}})
	o, err := s.CreateOrder(testDraft(func(d *OrderDraft) { d.ContactNumber = "0901234567" }))
	require.NoError(t, err)
	assert.Equal(t, "DH002", o.OrderNumber)
}

func TestCreateOrderConsumesCustomerDraft(t *testing.T) {
	s := NewStore(nil)
	s.BeginCustomerDraft("Trần Thị B", "0987654321")
	require.True(t, s.DraftPending())

	o, err := s.CreateOrder(testDraft(func(d *OrderDraft) {
		d.CustomerName = "Trần Thị B"
		d.ContactNumber = "0987654321"
	}))
	require.NoError(t, err)

	assert.False(t, s.DraftPending())
	assert.Len(t, s.Orders(), 1)
	assert.Equal(t, o.ID, s.Orders()[0].ID)
}

func TestCustomerDraftLifecycle(t *testing.T) {
	s := NewStore(nil)
	s.BeginCustomerDraft("Lê Văn C", "0912345678")
	require.True(t, s.DraftPending())

	placeholder := s.Orders()[0]
	assert.True(t, placeholder.IsPlaceholder)
	assert.Equal(t, "N/A", placeholder.OrderNumber)
	assert.Equal(t, "PLACEHOLDER", placeholder.OrderName)

	// second draft is a no-op while one is pending
	s.BeginCustomerDraft("Khác", "0999999999")
	assert.Len(t, s.Orders(), 1)

	s.CancelCustomerDraft()
	assert.False(t, s.DraftPending())
	assert.Empty(t, s.Orders())
}

func TestBeginCustomerDraftKnownPhoneNoop(t *testing.T) {
	s := NewStore([]Order{{ID: "1", ContactNumber: "0901234567"}})
	s.BeginCustomerDraft("Nguyễn Văn A", "0901234567")
	assert.False(t, s.DraftPending())
	assert.Len(t, s.Orders(), 1)
}

func TestEditOrderPreservesIdentity(t *testing.T) {
	s := NewStore(nil)
	created, err := s.CreateOrder(testDraft())
	require.NoError(t, err)

	edited, err := s.EditOrder(created.ID, testDraft(func(d *OrderDraft) {
		d.OrderName = "In áo thun sự kiện (bổ sung)"
		d.Products[0].Quantity = "60"
	}))
	require.NoError(t, err)

	assert.Equal(t, created.ID, edited.ID)
	assert.Equal(t, created.OrderNumber, edited.OrderNumber)
	assert.Equal(t, int64(6000000), edited.TotalOrderValue)
	assert.Len(t, s.Orders(), 1)
}

func TestEditOrderNotFound(t *testing.T) {
	s := NewStore(nil)
	_, err := s.EditOrder("missing", testDraft())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestDeleteOrder(t *testing.T) {
	s := NewStore([]Order{{ID: "1", OrderNumber: "DH001"}})
	require.NoError(t, s.DeleteOrder("1"))
	assert.Empty(t, s.Orders())
	assert.ErrorIs(t, s.DeleteOrder("1"), shared.ErrNotFound)
}

func TestDeletedNumberNotReissued(t *testing.T) {
	s := NewStore(nil)
	first, err := s.CreateOrder(testDraft())
	require.NoError(t, err)
	second, err := s.CreateOrder(testDraft())
	require.NoError(t, err)
	assert.Equal(t, "DH002", second.OrderNumber)

	require.NoError(t, s.DeleteOrder(first.ID))
	require.NoError(t, s.DeleteOrder(second.ID))

	third, err := s.CreateOrder(testDraft())
	require.NoError(t, err)
	// fresh store, but numbers only ever move forward while orders exist
	assert.Equal(t, "DH001", third.OrderNumber)
}

func TestUpdatePaymentRecomputesDebtOnly(t *testing.T) {
	s := NewStore([]Order{{
		ID: "1", FinalAmount: 5500000, Deposit: 2000000, RemainingDebt: 3500000,
	}})
	require.NoError(t, s.UpdatePayment("1", 3500000))

	o, err := s.Get("1")
	require.NoError(t, err)
	assert.Equal(t, int64(3500000), o.Payment)
	assert.Equal(t, int64(0), o.RemainingDebt)
	assert.Equal(t, int64(5500000), o.FinalAmount)
}

func TestUpdateDeposit(t *testing.T) {
	s := NewStore([]Order{{ID: "1", FinalAmount: 5000000}})
	require.NoError(t, s.UpdateDeposit("1", 6000000))

	o, _ := s.Get("1")
	assert.Equal(t, int64(-1000000), o.RemainingDebt)
}

func TestUpdateStatus(t *testing.T) {
	s := NewStore([]Order{{ID: "1", Status: StatusPending}})
	require.NoError(t, s.UpdateStatus("1", StatusCompleted))
	o, _ := s.Get("1")
	assert.Equal(t, StatusCompleted, o.Status)
	assert.ErrorIs(t, s.UpdateStatus("x", StatusCompleted), shared.ErrNotFound)
}

func TestBulkSetDiscountApplied(t *testing.T) {
	s := NewStore([]Order{{ID: "1"}, {ID: "2", DiscountApplied: true}})
	s.BulkSetDiscountApplied(map[string]bool{"1": true, "2": false, "missing": true})

	a, _ := s.Get("1")
	b, _ := s.Get("2")
	assert.True(t, a.DiscountApplied)
	assert.False(t, b.DiscountApplied)
}

func TestRenameCustomerFansOut(t *testing.T) {
	s := NewStore([]Order{
		{ID: "1", ContactNumber: "0901234567", CustomerName: "Nguyễn Văn A"},
		{ID: "2", ContactNumber: "0901234567", CustomerName: "Nguyễn Văn A"},
		{ID: "3", ContactNumber: "0987654321", CustomerName: "Trần Thị B"},
	})
	changed := s.RenameCustomer("0901234567", "Nguyễn Văn An")
	assert.Equal(t, 2, changed)

	for _, id := range []string{"1", "2"} {
		o, _ := s.Get(id)
		assert.Equal(t, "Nguyễn Văn An", o.CustomerName)
	}
	other, _ := s.Get("3")
	assert.Equal(t, "Trần Thị B", other.CustomerName)
}

func TestCollaboratorSetGrows(t *testing.T) {
	s := NewStore(nil, "Võ Đình Thắng")
	assert.Equal(t, []string{"Võ Đình Thắng"}, s.Collaborators())

	_, err := s.CreateOrder(testDraft(func(d *OrderDraft) { d.Collaborator = "Tâm Phúc Việt" }))
	require.NoError(t, err)
	assert.Len(t, s.Collaborators(), 2)

	// duplicates are not re-added
	_, err = s.CreateOrder(testDraft(func(d *OrderDraft) { d.Collaborator = "Tâm Phúc Việt" }))
	require.NoError(t, err)
	assert.Len(t, s.Collaborators(), 2)
}

func TestFindByNumber(t *testing.T) {
	s := NewStore([]Order{{ID: "1", OrderNumber: "DH001"}})

	o, err := s.FindByNumber("dh001")
	require.NoError(t, err)
	assert.Equal(t, "1", o.ID)

	_, err = s.FindByNumber("DH999")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestRecentSkipsPlaceholders(t *testing.T) {
	s := NewStore([]Order{
		{ID: "1", OrderNumber: "DH001", OrderDate: date("2025-10-01")},
		{ID: "2", OrderNumber: "DH002", OrderDate: date("2025-10-05")},
		{ID: "p", OrderNumber: "N/A", OrderDate: date("2025-10-09"), IsPlaceholder: true},
	})
	recent := s.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "DH002", recent[0].OrderNumber)
	assert.Equal(t, "DH001", recent[1].OrderNumber)
}

func TestApplyDispatch(t *testing.T) {
	s := NewStore([]Order{{ID: "1", OrderNumber: "DH001", FinalAmount: 1000000}})

	require.NoError(t, s.Apply(UpdatePaymentCmd{ID: "1", Amount: 400000}))
	require.NoError(t, s.Apply(UpdateStatusCmd{ID: "1", Status: StatusUrgent}))
	require.NoError(t, s.Apply(BeginCustomerDraftCmd{Name: "Trần Thị B", Phone: "0987654321"}))
	require.NoError(t, s.Apply(CancelCustomerDraftCmd{}))

	o, _ := s.Get("1")
	assert.Equal(t, int64(600000), o.RemainingDebt)
	assert.Equal(t, StatusUrgent, o.Status)
	assert.False(t, s.DraftPending())
}

func TestApplyUnconfirmedDeleteIsNoop(t *testing.T) {
	s := NewStore([]Order{{ID: "1"}})
	require.NoError(t, s.Apply(DeleteOrderCmd{ID: "1"}))
	assert.Len(t, s.Orders(), 1)

	require.NoError(t, s.Apply(DeleteOrderCmd{ID: "1", Confirmed: true}))
	assert.Empty(t, s.Orders())
}

func TestStoreNowInjectable(t *testing.T) {
	s := NewStore(nil)
	s.now = func() time.Time { return date("2025-10-20") }
	s.BeginCustomerDraft("Lê Văn C", "0912345678")
	assert.Equal(t, date("2025-10-20"), s.Orders()[0].OrderDate)
}
