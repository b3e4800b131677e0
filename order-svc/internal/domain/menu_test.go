package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultMenu(t *testing.T) {
	menu := DefaultMenu()

	assert.Len(t, menu.Bases, len(basePrices))
	assert.Len(t, menu.Flavors, len(flavorPrices))
	assert.Equal(t, "Americano", menu.Bases[0].Name)
	assert.Equal(t, "Caramel", menu.Flavors[0].Name)

	var sizes []string
	for _, item := range menu.Sizes {
		sizes = append(sizes, item.Name)
	}
	assert.Equal(t, []string{"Small", "Medium", "Large", "Mega"}, sizes)
}

func TestLookups(t *testing.T) {
	price, ok := BasePrice("hot chocolate")
	assert.True(t, ok)
	assert.Equal(t, "3.00", price.StringFixed(2))

	price, ok = FlavorPrice("PUMPKIN  spice")
	assert.True(t, ok)
	assert.Equal(t, "0.90", price.StringFixed(2))

	_, ok = BasePrice("Milkshake")
	assert.False(t, ok)
	_, ok = FlavorPrice("")
	assert.False(t, ok)
}
