package repository

import "context"

type InventoryRepository interface {
	// 在庫が足りるときだけ減算。falseでも在庫が負になることはない。
	DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error)
}
