package domain

import "errors"

var (
	ErrInvalidDrink  = errors.New("invalid drink")
	ErrInvalidSize   = errors.New("invalid size")
	ErrInvalidFlavor = errors.New("invalid flavor")
)

// IsValidationError reports whether err was caused by a drink that failed
// construction.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidDrink) ||
		errors.Is(err, ErrInvalidSize) ||
		errors.Is(err, ErrInvalidFlavor)
}
