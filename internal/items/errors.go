package items

import "errors"

var (
	ErrUnknownItem      = errors.New("unknown item")
	ErrStackOverflow    = errors.New("count exceeds max stack size")
	ErrInvalidCapacity  = errors.New("inventory capacity must be at least 1")
	ErrNegativeQuantity = errors.New("item count must not be negative")
)
