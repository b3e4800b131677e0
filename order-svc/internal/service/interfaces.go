package service

import (
	"context"

	"cinos-cafe/order-svc/internal/domain"
)

type OrderServiceInterface interface {
	Quote(ctx context.Context, req domain.OrderRequest) (*domain.Quote, error)
	Receipt(ctx context.Context, req domain.OrderRequest) (string, error)
	QRCode(ctx context.Context, req domain.OrderRequest) ([]byte, error)
	Menu() domain.Menu
}

var _ OrderServiceInterface = (*OrderService)(nil)
