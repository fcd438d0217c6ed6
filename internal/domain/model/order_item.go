package model

import "github.com/shopspring/decimal"

// UnitPriceは注文確定時点の価格スナップショット。後から変えない。
type OrderItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64           `gorm:"column:orden_id;not null;index;uniqueIndex:uq_orden_producto,priority:1" json:"orden_id"`
	ProductID int64           `gorm:"column:producto_id;not null;index;uniqueIndex:uq_orden_producto,priority:2" json:"producto_id"`
	Quantity  int64           `gorm:"column:cantidad;not null" json:"cantidad"`
	UnitPrice decimal.Decimal `gorm:"column:precio_unitario;type:decimal(10,2);not null" json:"precio_unitario"`
	Subtotal  decimal.Decimal `gorm:"column:subtotal;type:decimal(10,2);not null" json:"subtotal"`

	// 注文削除で明細も消える。商品は明細がある限り削除できない。
	Order   *Order   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (OrderItem) TableName() string { return "orden_items" }
