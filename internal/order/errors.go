package order

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("order not found")
	ErrEmptyCart     = errors.New("cart is empty, nothing to order")
	ErrPhoneRequired = errors.New("phone is required")
	ErrUnknownStatus = errors.New("unknown order status")
)

// IllegalTransitionError reports a lifecycle move the state graph forbids.
// The order is left untouched.
type IllegalTransitionError struct {
	From Status
	To   Status
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal status transition %s -> %s", e.From, e.To)
}

// ConflictError reports a lost optimistic-concurrency race: another
// administrator moved the order after our read. Actual carries the status
// found in storage so the caller can re-fetch and decide.
type ConflictError struct {
	OrderID  string
	Expected Status
	Actual   Status
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("order %s changed concurrently: read %s, now %s", e.OrderID, e.Expected, e.Actual)
}
