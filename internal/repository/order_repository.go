package repository

import (
	"context"

	"tienda/internal/domain/model"
)

type OrderListFilter struct {
	Status     string
	CustomerID *int64
	Skip       int
	Limit      int
}

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	List(ctx context.Context, f OrderListFilter) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	Delete(ctx context.Context, orderID int64) error
}
