package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrCustomerNotSaved occurs when an order is submitted for a phone
	// number whose customer record has not been saved yet.
	ErrCustomerNotSaved = errors.New("customer not saved")
)
