package repository

import (
	"context"

	"tienda/internal/domain/model"
)

type CustomerListQuery struct {
	Q     string
	Skip  int
	Limit int
}

type CustomerRepository interface {
	List(ctx context.Context, q CustomerListQuery) ([]model.Customer, error)
	FindByID(ctx context.Context, id int64) (model.Customer, error)

	Create(ctx context.Context, c model.Customer) (model.Customer, error)
	Update(ctx context.Context, c model.Customer) error
	Delete(ctx context.Context, id int64) error
}
