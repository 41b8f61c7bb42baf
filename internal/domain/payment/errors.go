package payment

import "errors"

var (
	ErrAlreadySettled = errors.New("payment already settled for this period")
)
