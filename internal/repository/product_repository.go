package repository

import (
	"context"
	"errors"

	"tienda/internal/domain/model"
)

var (
	ErrNotFound = errors.New("not found")

	// 一意制約違反（SKU・email重複）
	ErrConflict = errors.New("conflict")

	// 参照されている行は削除できない
	ErrRestricted = errors.New("restricted")
)

// 一覧検索（skip/limitは元API準拠）
type ProductListQuery struct {
	Q     string
	Skip  int
	Limit int
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id int64) error
}
