package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Size is the portion size of a drink. The zero value is not a valid size.
type Size int

const (
	Small Size = iota + 1
	Medium
	Large
	Mega
)

// DefaultSize is used when an order line does not name a size.
const DefaultSize = Medium

var allSizes = []Size{Small, Medium, Large, Mega}

var sizeNames = map[Size]string{
	Small:  "Small",
	Medium: "Medium",
	Large:  "Large",
	Mega:   "Mega",
}

var sizeSurcharges = map[Size]decimal.Decimal{
	Small:  cents(0),
	Medium: cents(50),
	Large:  cents(100),
	Mega:   cents(125),
}

// Sizes returns every size in ascending order.
func Sizes() []Size {
	out := make([]Size, len(allSizes))
	copy(out, allSizes)
	return out
}

// ParseSize matches name case-insensitively against the known sizes.
func ParseSize(name string) (Size, error) {
	key := strings.TrimSpace(name)
	for _, s := range allSizes {
		if strings.EqualFold(sizeNames[s], key) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (available: %s)", ErrInvalidSize, name, strings.Join(sizeCodes(), ", "))
}

func (s Size) Valid() bool {
	_, ok := sizeNames[s]
	return ok
}

// Surcharge is added to the base price. Unknown sizes carry no surcharge.
func (s Size) Surcharge() decimal.Decimal {
	if v, ok := sizeSurcharges[s]; ok {
		return v
	}
	return decimal.Zero
}

func (s Size) String() string {
	if name, ok := sizeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Size(%d)", int(s))
}

// Code is the upper-case form printed on debug output, e.g. LARGE.
func (s Size) Code() string {
	return strings.ToUpper(s.String())
}

func sizeCodes() []string {
	codes := make([]string, 0, len(allSizes))
	for _, s := range allSizes {
		codes = append(codes, s.Code())
	}
	return codes
}
