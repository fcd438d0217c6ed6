package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string          `gorm:"column:nombre;type:varchar(120);not null;index;index:ix_productos_nombre_color,priority:1" json:"nombre"`
	SKU       string          `gorm:"column:sku;type:varchar(64);not null;uniqueIndex" json:"sku"`
	Price     decimal.Decimal `gorm:"column:precio;type:decimal(10,2);not null" json:"precio"`
	Stock     int64           `gorm:"column:stock;not null;default:0" json:"stock"`
	Size      *string         `gorm:"column:talla;type:varchar(16)" json:"talla"`
	Color     *string         `gorm:"column:color;type:varchar(32);index:ix_productos_nombre_color,priority:2" json:"color"`
	CreatedAt time.Time       `gorm:"column:creado_en;not null;autoCreateTime" json:"creado_en"`
}

// 元のスキーマ名に合わせる
func (Product) TableName() string { return "productos" }
