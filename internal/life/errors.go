package life

import "errors"

var (
	// ErrInvalidDimension reports a non-positive grid width or height.
	ErrInvalidDimension = errors.New("life: invalid dimension")
	// ErrIndexOutOfRange reports direct cell access outside the grid.
	ErrIndexOutOfRange = errors.New("life: index out of range")
	// ErrBadPattern reports an unreadable plaintext pattern.
	ErrBadPattern = errors.New("life: bad pattern")
)
