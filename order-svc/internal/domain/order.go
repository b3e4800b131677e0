package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the sales tax applied when none is configured.
var DefaultTaxRate = decimal.RequireFromString("0.0725")

// Totals is the money breakdown of an order.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Order is an append-only list of drinks taxed at a fixed rate. Every total is
// recomputed from the current drinks, so nothing goes stale after AddDrink.
// An Order is not safe for concurrent mutation.
type Order struct {
	drinks  []Drink
	taxRate decimal.Decimal
}

func NewOrder(taxRate decimal.Decimal) *Order {
	return &Order{taxRate: taxRate}
}

// AddDrink appends d and returns the order for chaining.
func (o *Order) AddDrink(d Drink) *Order {
	o.drinks = append(o.drinks, d)
	return o
}

func (o *Order) Len() int                 { return len(o.drinks) }
func (o *Order) TaxRate() decimal.Decimal { return o.taxRate }

// Drinks returns a copy of the drinks in the order they were added.
func (o *Order) Drinks() []Drink {
	out := make([]Drink, len(o.drinks))
	copy(out, o.drinks)
	return out
}

// Subtotal is the exact sum of drink costs.
func (o *Order) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, d := range o.drinks {
		sum = sum.Add(d.Cost())
	}
	return sum
}

// Tax is subtotal × rate rounded half-up to cents.
func (o *Order) Tax() decimal.Decimal {
	return o.Subtotal().Mul(o.taxRate).Round(2)
}

// Total rounds once, after adding tax to the unrounded subtotal.
func (o *Order) Total() decimal.Decimal {
	return o.Subtotal().Add(o.Tax()).Round(2)
}

func (o *Order) Totals() Totals {
	subtotal := o.Subtotal()
	tax := subtotal.Mul(o.taxRate).Round(2)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax).Round(2),
	}
}

// Receipt renders one line per drink followed by subtotal, tax and total.
// Lines are separated by "\n" with no trailing newline.
func (o *Order) Receipt() string {
	totals := o.Totals()
	lines := make([]string, 0, len(o.drinks)+3)
	for _, d := range o.drinks {
		lines = append(lines, fmt.Sprintf("%s - %s", d.Describe(), FormatMoney(d.Cost())))
	}
	lines = append(lines,
		"Subtotal: "+FormatMoney(totals.Subtotal),
		"Tax: "+FormatMoney(totals.Tax),
		"Total: "+FormatMoney(totals.Total),
	)
	return strings.Join(lines, "\n")
}

// FormatMoney prints an amount as dollars with exactly two decimals.
func FormatMoney(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
