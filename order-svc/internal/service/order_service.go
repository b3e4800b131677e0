package service

import (
	"context"
	"errors"
	"fmt"

	"cinos-cafe/order-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrQRUnavailable = errors.New("qr code generation is not configured")

// OrderService prices one request at a time. It holds no per-order state:
// every call builds and discards its own domain.Order.
type OrderService struct {
	taxRate   decimal.Decimal
	qrEncoder QRGenerator
	logger    *zap.Logger
	newID     func() uuid.UUID
}

func NewOrderService(taxRate decimal.Decimal, qr QRGenerator, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		taxRate:   taxRate,
		qrEncoder: qr,
		logger:    logger,
		newID:     uuid.New,
	}
}

// Quote validates every line before pricing; the first bad line aborts the
// request with its 1-based position.
func (s *OrderService) Quote(ctx context.Context, req domain.OrderRequest) (*domain.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	order := domain.NewOrder(s.taxRate)
	for i, line := range req.Drinks {
		drink, err := domain.ParseDrink(line.Base, line.SizeOrDefault(), line.Flavors...)
		if err != nil {
			s.logger.Warn("rejected drink",
				zap.Int("line", i+1),
				zap.String("base", line.Base),
				zap.Error(err))
			return nil, fmt.Errorf("drink %d: %w", i+1, err)
		}
		order.AddDrink(drink)
	}

	quote := domain.NewQuote(s.newID(), order)
	s.logger.Info("quoted order",
		zap.String("quote_id", quote.ID.String()),
		zap.Int("drinks", order.Len()),
		zap.String("total", quote.Totals.Total.StringFixed(2)))
	return quote, nil
}

func (s *OrderService) Receipt(ctx context.Context, req domain.OrderRequest) (string, error) {
	quote, err := s.Quote(ctx, req)
	if err != nil {
		return "", err
	}
	return quote.Receipt, nil
}

func (s *OrderService) QRCode(ctx context.Context, req domain.OrderRequest) ([]byte, error) {
	if s.qrEncoder == nil {
		return nil, ErrQRUnavailable
	}
	quote, err := s.Quote(ctx, req)
	if err != nil {
		return nil, err
	}
	png, err := s.qrEncoder.Generate(quote)
	if err != nil {
		return nil, fmt.Errorf("generate qr code for quote %s: %w", quote.ID, err)
	}
	return png, nil
}

func (s *OrderService) Menu() domain.Menu {
	return domain.DefaultMenu()
}
