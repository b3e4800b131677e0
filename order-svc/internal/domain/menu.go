package domain

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var basePrices = map[string]decimal.Decimal{
	"Espresso":      cents(250),
	"Americano":     cents(275),
	"Latte":         cents(300),
	"Cappuccino":    cents(325),
	"Mocha":         cents(350),
	"Cold Brew":     cents(325),
	"Tea":           cents(225),
	"Hot Chocolate": cents(300),
}

var flavorPrices = map[string]decimal.Decimal{
	"Vanilla":       cents(75),
	"Caramel":       cents(75),
	"Hazelnut":      cents(75),
	"Peppermint":    cents(60),
	"Cinnamon":      cents(50),
	"Honey":         cents(50),
	"Lavender":      cents(80),
	"Pumpkin Spice": cents(90),
}

// MenuItem is one priced entry on the menu.
type MenuItem struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Menu lists everything a drink can be built from. Size prices are surcharges.
type Menu struct {
	Bases   []MenuItem `json:"bases"`
	Sizes   []MenuItem `json:"sizes"`
	Flavors []MenuItem `json:"flavors"`
}

// DefaultMenu returns a snapshot of the price tables. Bases and flavors are
// sorted by name, sizes keep their natural order.
func DefaultMenu() Menu {
	sizes := make([]MenuItem, 0, len(allSizes))
	for _, s := range allSizes {
		sizes = append(sizes, MenuItem{Name: s.String(), Price: s.Surcharge()})
	}
	return Menu{
		Bases:   sortedItems(basePrices),
		Sizes:   sizes,
		Flavors: sortedItems(flavorPrices),
	}
}

// BasePrice looks up a base drink by name, ignoring case and extra spaces.
func BasePrice(name string) (decimal.Decimal, bool) {
	price, ok := basePrices[normalizeName(name)]
	return price, ok
}

// FlavorPrice looks up a flavor by name, ignoring case and extra spaces.
func FlavorPrice(name string) (decimal.Decimal, bool) {
	price, ok := flavorPrices[normalizeName(name)]
	return price, ok
}

func BaseNames() []string   { return sortedNames(basePrices) }
func FlavorNames() []string { return sortedNames(flavorPrices) }

// normalizeName collapses whitespace and title-cases each word so that
// "  cold   BREW" and "Cold Brew" name the same thing. A Caser is stateful,
// so each call gets its own.
func normalizeName(name string) string {
	return cases.Title(language.English).String(strings.Join(strings.Fields(name), " "))
}

func cents(n int64) decimal.Decimal {
	return decimal.New(n, -2)
}

func sortedNames(table map[string]decimal.Decimal) []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedItems(table map[string]decimal.Decimal) []MenuItem {
	items := make([]MenuItem, 0, len(table))
	for _, name := range sortedNames(table) {
		items = append(items, MenuItem{Name: name, Price: table[name]})
	}
	return items
}
