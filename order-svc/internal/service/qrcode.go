package service

import (
	"fmt"

	"cinos-cafe/order-svc/internal/domain"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(quote *domain.Quote) ([]byte, error)
}

// DefaultQRGenerator encodes a link to the quote's receipt as a PNG.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(quote *domain.Quote) ([]byte, error) {
	return qrcode.Encode(g.Payload(quote), qrcode.Medium, 256)
}

func (g DefaultQRGenerator) Payload(quote *domain.Quote) string {
	return fmt.Sprintf("%s/receipt?quote=%s&total=%s", g.BaseURL, quote.ID, quote.Totals.Total.StringFixed(2))
}
