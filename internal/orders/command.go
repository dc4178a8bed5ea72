package orders

import "fmt"

// Command is the closed set of store mutations. Callers that need a
// uniform mutation surface (replay, logging, scripted flows) dispatch
// through Store.Apply; direct method calls remain available for code
// that knows which mutation it wants.
type Command interface {
	isCommand()
}

type CreateOrderCmd struct {
	Draft OrderDraft
}

type EditOrderCmd struct {
	ID    string
	Draft OrderDraft
}

// DeleteOrderCmd removes an order only when the caller has confirmed
// the deletion. An unconfirmed delete is a no-op, not an error.
type DeleteOrderCmd struct {
	ID        string
	Confirmed bool
}

type UpdatePaymentCmd struct {
	ID     string
	Amount int64
}

type UpdateDepositCmd struct {
	ID     string
	Amount int64
}

type UpdateStatusCmd struct {
	ID     string
	Status OrderStatus
}

type SetDiscountAppliedCmd struct {
	ID      string
	Applied bool
}

type BulkSetDiscountAppliedCmd struct {
	Updates map[string]bool
}

type BeginCustomerDraftCmd struct {
	Name  string
	Phone string
}

type CancelCustomerDraftCmd struct{}

type RenameCustomerCmd struct {
	Phone   string
	NewName string
}

func (CreateOrderCmd) isCommand()            {}
func (EditOrderCmd) isCommand()              {}
func (DeleteOrderCmd) isCommand()            {}
func (UpdatePaymentCmd) isCommand()          {}
func (UpdateDepositCmd) isCommand()          {}
func (UpdateStatusCmd) isCommand()           {}
func (SetDiscountAppliedCmd) isCommand()     {}
func (BulkSetDiscountAppliedCmd) isCommand() {}
func (BeginCustomerDraftCmd) isCommand()     {}
func (CancelCustomerDraftCmd) isCommand()    {}
func (RenameCustomerCmd) isCommand()         {}

// Apply dispatches one command to its mutation.
func (s *Store) Apply(cmd Command) error {
	switch c := cmd.(type) {
	case CreateOrderCmd:
		_, err := s.CreateOrder(c.Draft)
		return err
	case EditOrderCmd:
		_, err := s.EditOrder(c.ID, c.Draft)
		return err
	case DeleteOrderCmd:
		if !c.Confirmed {
			return nil
		}
		return s.DeleteOrder(c.ID)
	case UpdatePaymentCmd:
		return s.UpdatePayment(c.ID, c.Amount)
	case UpdateDepositCmd:
		return s.UpdateDeposit(c.ID, c.Amount)
	case UpdateStatusCmd:
		return s.UpdateStatus(c.ID, c.Status)
	case SetDiscountAppliedCmd:
		return s.SetDiscountApplied(c.ID, c.Applied)
	case BulkSetDiscountAppliedCmd:
		s.BulkSetDiscountApplied(c.Updates)
		return nil
	case BeginCustomerDraftCmd:
		s.BeginCustomerDraft(c.Name, c.Phone)
		return nil
	case CancelCustomerDraftCmd:
		s.CancelCustomerDraft()
		return nil
	case RenameCustomerCmd:
		s.RenameCustomer(c.Phone, c.NewName)
		return nil
	default:
		return fmt.Errorf("unknown command %T", cmd)
	}
}
