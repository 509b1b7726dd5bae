// Package service holds the storefront business logic: catalog access,
// cart mutation, the checkout conversation state machine, and the order
// status lifecycle.
package service

// Error is a user-reportable domain error with a stable machine code.
type Error struct {
	code string
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Code returns the stable error code used in logs and handler summaries.
func (e *Error) Code() string { return e.code }

var (
	// ErrProductNotFound is returned when a product identifier does not resolve.
	ErrProductNotFound = &Error{code: "PRODUCT_NOT_FOUND", msg: "product not found"}
	// ErrEmptyCart is returned when checkout requires a non-empty cart.
	ErrEmptyCart = &Error{code: "EMPTY_CART", msg: "cart is empty"}
	// ErrCheckoutNotStarted is returned when a payment selection arrives
	// without a complete checkout draft (missing session or prior stages).
	ErrCheckoutNotStarted = &Error{code: "CHECKOUT_NOT_STARTED", msg: "checkout flow not started"}
	// ErrOrderNotFound is returned when an order identifier does not resolve.
	ErrOrderNotFound = &Error{code: "ORDER_NOT_FOUND", msg: "order not found"}
	// ErrForbidden is returned when a non-administrator attempts an admin action.
	ErrForbidden = &Error{code: "FORBIDDEN", msg: "only admin"}
	// ErrMalformedInput is returned for invalid admin product payloads.
	ErrMalformedInput = &Error{code: "MALFORMED_INPUT", msg: "malformed input"}
)
