package advance

import "errors"

var (
	ErrAdvanceNotFound       = errors.New("advance request not found")
	ErrAdvanceAlreadyDecided = errors.New("advance request already decided")
	ErrAdvanceOutstanding    = errors.New("an undecided or unsettled advance request already exists")
)
