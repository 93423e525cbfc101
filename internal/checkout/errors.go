package checkout

import "errors"

var (
	ErrEmptyCart         = errors.New("cart is empty, nothing to checkout")
	ErrSubmitInProgress  = errors.New("submission already in progress")
	ErrValidation        = errors.New("validation failed")
	ErrPaymentFailed     = errors.New("payment failed")
	ErrIllegalTransition = errors.New("illegal transition of submission status")
)
