package domain

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DrinkRequest struct {
	Base    string   `json:"base"`
	Size    string   `json:"size"`
	Flavors []string `json:"flavors"`
}

// SizeOrDefault falls back to DefaultSize when the line leaves size blank.
func (r DrinkRequest) SizeOrDefault() string {
	if strings.TrimSpace(r.Size) == "" {
		return DefaultSize.String()
	}
	return r.Size
}

type OrderRequest struct {
	Drinks []DrinkRequest `json:"drinks"`
}

type QuoteLine struct {
	Description string
	Base        string
	Size        string
	Flavors     []string
	Cost        decimal.Decimal
}

// Quote is a priced snapshot of an order.
type Quote struct {
	ID      uuid.UUID
	Lines   []QuoteLine
	TaxRate decimal.Decimal
	Totals  Totals
	Receipt string
}

func NewQuote(id uuid.UUID, order *Order) *Quote {
	drinks := order.Drinks()
	lines := make([]QuoteLine, 0, len(drinks))
	for _, d := range drinks {
		lines = append(lines, QuoteLine{
			Description: d.Describe(),
			Base:        d.Base(),
			Size:        d.Size().String(),
			Flavors:     d.Flavors(),
			Cost:        d.Cost(),
		})
	}
	return &Quote{
		ID:      id,
		Lines:   lines,
		TaxRate: order.TaxRate(),
		Totals:  order.Totals(),
		Receipt: order.Receipt(),
	}
}
