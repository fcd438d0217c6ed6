package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// 値がライフサイクルのどれかであるか
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID         int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID int64       `gorm:"column:cliente_id;not null;index" json:"cliente_id"`
	Status     OrderStatus `gorm:"column:estado;type:varchar(20);not null;default:'pending';index" json:"estado"`
	CreatedAt  time.Time   `gorm:"column:creado_en;not null;autoCreateTime" json:"creado_en"`

	// 顧客は注文がある限り削除できない
	Customer *Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (Order) TableName() string { return "ordenes" }
