package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Drink is an immutable, validated drink. Build one with NewDrink or ParseDrink.
type Drink struct {
	base    string
	size    Size
	flavors []string
}

// NewDrink validates base, size and flavors. Flavors are matched
// case-insensitively, deduplicated and kept in alphabetical order. On error the
// zero Drink is returned.
func NewDrink(base string, size Size, flavors ...string) (Drink, error) {
	name := normalizeName(base)
	if name == "" {
		return Drink{}, fmt.Errorf("%w: base is required", ErrInvalidDrink)
	}
	if _, ok := basePrices[name]; !ok {
		return Drink{}, fmt.Errorf("%w: unknown base %q (available: %s)",
			ErrInvalidDrink, base, strings.Join(BaseNames(), ", "))
	}
	if !size.Valid() {
		return Drink{}, fmt.Errorf("%w: %s (available: %s)",
			ErrInvalidSize, size, strings.Join(sizeCodes(), ", "))
	}

	seen := make(map[string]struct{}, len(flavors))
	picked := make([]string, 0, len(flavors))
	for _, f := range flavors {
		flavor := normalizeName(f)
		if _, ok := flavorPrices[flavor]; !ok {
			return Drink{}, fmt.Errorf("%w: %q (available: %s)",
				ErrInvalidFlavor, f, strings.Join(FlavorNames(), ", "))
		}
		if _, dup := seen[flavor]; dup {
			continue
		}
		seen[flavor] = struct{}{}
		picked = append(picked, flavor)
	}
	sort.Strings(picked)

	return Drink{base: name, size: size, flavors: picked}, nil
}

// ParseDrink is NewDrink with the size given by name.
func ParseDrink(base, size string, flavors ...string) (Drink, error) {
	s, err := ParseSize(size)
	if err != nil {
		return Drink{}, err
	}
	return NewDrink(base, s, flavors...)
}

func (d Drink) Base() string { return d.base }
func (d Drink) Size() Size   { return d.size }

// Flavors returns a copy of the drink's flavors in alphabetical order.
func (d Drink) Flavors() []string {
	out := make([]string, len(d.flavors))
	copy(out, d.flavors)
	return out
}

// WithSize returns a copy of d with a different size.
func (d Drink) WithSize(size Size) (Drink, error) {
	return NewDrink(d.base, size, d.flavors...)
}

// Cost is base price + size surcharge + one charge per distinct flavor.
func (d Drink) Cost() decimal.Decimal {
	total := basePrices[d.base].Add(d.size.Surcharge())
	for _, f := range d.flavors {
		total = total.Add(flavorPrices[f])
	}
	return total
}

// Describe renders the receipt label, e.g. "Large Latte with Caramel, Vanilla".
func (d Drink) Describe() string {
	label := d.size.String() + " " + d.base
	if len(d.flavors) == 0 {
		return label
	}
	return label + " with " + strings.Join(d.flavors, ", ")
}

func (d Drink) String() string {
	flavors := "None"
	if len(d.flavors) > 0 {
		flavors = strings.Join(d.flavors, ", ")
	}
	return fmt.Sprintf("Drink(base=%s, size=%s, flavors=[%s], cost=%s)",
		d.base, d.size.Code(), flavors, FormatMoney(d.Cost()))
}
