package delivery

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidDeliveryID     = errors.New("invalid delivery id")

	ErrUnknownStatus           = errors.New("unknown delivery status")
	ErrInvalidStatusTransition = errors.New("illegal status transition")

	ErrDeliveryNotFound    = errors.New("delivery not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrDeliveryExists      = errors.New("delivery already exists for order")
	ErrTransitionConflict  = errors.New("concurrent status transition rejected")
	ErrTrackingNumberTaken = errors.New("tracking number already taken")
)
