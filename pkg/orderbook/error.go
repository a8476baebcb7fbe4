package orderbook

import "errors"

var (
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrDuplicateOrderID   = errors.New("duplicate order id")
	ErrInvalidSide        = errors.New("invalid order side")
	ErrInvalidTimeInForce = errors.New("invalid time in force")
	ErrInvalidOrderPrice  = errors.New("invalid order price")
	ErrInvalidOrderQty    = errors.New("invalid order quantity")
	ErrOrderNotFound      = errors.New("order not found")
)
