package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDrink(t *testing.T, base, size string, flavors ...string) Drink {
	t.Helper()
	drink, err := ParseDrink(base, size, flavors...)
	require.NoError(t, err)
	return drink
}

func TestOrder_Empty(t *testing.T) {
	order := NewOrder(decimal.RequireFromString("0.08"))

	assert.True(t, order.Subtotal().IsZero())
	assert.True(t, order.Tax().IsZero())
	assert.True(t, order.Total().IsZero())
	assert.Equal(t, "Subtotal: $0.00\nTax: $0.00\nTotal: $0.00", order.Receipt())
}

func TestOrder_SingleDrinkScenario(t *testing.T) {
	order := NewOrder(decimal.RequireFromString("0.08")).
		AddDrink(mustDrink(t, "Latte", "Medium", "Vanilla"))

	assert.Equal(t, "4.25", order.Subtotal().StringFixed(2))
	assert.Equal(t, "0.34", order.Tax().StringFixed(2))
	assert.Equal(t, "4.59", order.Total().StringFixed(2))
	assert.Equal(t,
		"Medium Latte with Vanilla - $4.25\nSubtotal: $4.25\nTax: $0.34\nTotal: $4.59",
		order.Receipt())
}

func TestOrder_SampleOrderAtDefaultRate(t *testing.T) {
	order := NewOrder(DefaultTaxRate).
		AddDrink(mustDrink(t, "Latte", "Large", "Vanilla")).
		AddDrink(mustDrink(t, "Espresso", "Small"))

	totals := order.Totals()
	assert.Equal(t, "7.25", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "0.53", totals.Tax.StringFixed(2))
	assert.Equal(t, "7.78", totals.Total.StringFixed(2))
}

func TestOrder_TaxRoundsHalfUp(t *testing.T) {
	order := NewOrder(decimal.RequireFromString("0.10")).
		AddDrink(mustDrink(t, "Tea", "Small"))

	// 2.25 * 0.10 = 0.225
	assert.Equal(t, "0.23", order.Tax().StringFixed(2))
	assert.Equal(t, "2.48", order.Total().StringFixed(2))
}

func TestOrder_TotalEqualsSubtotalPlusTax(t *testing.T) {
	rates := []string{"0", "0.0725", "0.08", "0.0875", "0.13"}
	drinks := []Drink{
		mustDrink(t, "Latte", "Large", "Vanilla"),
		mustDrink(t, "Espresso", "Small"),
		mustDrink(t, "Mocha", "Mega", "Caramel", "Hazelnut", "Cinnamon"),
		mustDrink(t, "Tea", "Medium", "Honey", "Lavender"),
	}

	for _, rate := range rates {
		order := NewOrder(decimal.RequireFromString(rate))
		for _, d := range drinks {
			order.AddDrink(d)
			assert.True(t, order.Total().Equal(order.Subtotal().Add(order.Tax())),
				"rate %s after %d drinks", rate, order.Len())
		}
	}
}

func TestOrder_RecomputesAfterAdd(t *testing.T) {
	order := NewOrder(decimal.RequireFromString("0.08"))
	order.AddDrink(mustDrink(t, "Espresso", "Small"))
	before := order.Total()

	order.AddDrink(mustDrink(t, "Espresso", "Small"))

	assert.Equal(t, "2.70", before.StringFixed(2))
	assert.Equal(t, "5.40", order.Total().StringFixed(2))
	assert.Equal(t, 2, order.Len())
}

func TestOrder_ReceiptLinesAndOrder(t *testing.T) {
	order := NewOrder(DefaultTaxRate)
	order.AddDrink(mustDrink(t, "Latte", "Large", "Vanilla"))
	order.AddDrink(mustDrink(t, "Espresso", "Small"))
	order.AddDrink(mustDrink(t, "Espresso", "Small"))

	receipt := order.Receipt()
	lines := strings.Split(receipt, "\n")

	require.Len(t, lines, order.Len()+3)
	assert.Equal(t, "Large Latte with Vanilla - $4.75", lines[0])
	assert.Equal(t, "Small Espresso - $2.50", lines[1])
	assert.Equal(t, "Small Espresso - $2.50", lines[2])
	assert.Equal(t, "Subtotal: $9.75", lines[3])
	assert.Equal(t, "Tax: $0.71", lines[4])
	assert.Equal(t, "Total: $10.46", lines[5])
	assert.Equal(t, receipt, order.Receipt())
}

func TestOrder_DrinksIsACopy(t *testing.T) {
	order := NewOrder(DefaultTaxRate).AddDrink(mustDrink(t, "Latte", "Small"))

	drinks := order.Drinks()
	drinks[0] = mustDrink(t, "Mocha", "Mega")

	assert.Equal(t, "Latte", order.Drinks()[0].Base())
}

func TestNewQuote(t *testing.T) {
	id := uuid.New()
	order := NewOrder(decimal.RequireFromString("0.08")).
		AddDrink(mustDrink(t, "Latte", "Medium", "Vanilla"))

	quote := NewQuote(id, order)

	assert.Equal(t, id, quote.ID)
	require.Len(t, quote.Lines, 1)
	assert.Equal(t, "Medium Latte with Vanilla", quote.Lines[0].Description)
	assert.Equal(t, "Medium", quote.Lines[0].Size)
	assert.Equal(t, []string{"Vanilla"}, quote.Lines[0].Flavors)
	assert.Equal(t, "4.59", quote.Totals.Total.StringFixed(2))
	assert.Equal(t, order.Receipt(), quote.Receipt)
}

func TestDrinkRequest_SizeOrDefault(t *testing.T) {
	assert.Equal(t, "Medium", DrinkRequest{Base: "Latte"}.SizeOrDefault())
	assert.Equal(t, "large", DrinkRequest{Base: "Latte", Size: "large"}.SizeOrDefault())
}
