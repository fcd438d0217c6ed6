package model

import "time"

type Customer struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:nombre;type:varchar(120);not null;index" json:"nombre"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	Phone     *string   `gorm:"column:telefono;type:varchar(32)" json:"telefono"`
	CreatedAt time.Time `gorm:"column:creado_en;not null;autoCreateTime" json:"creado_en"`
}

func (Customer) TableName() string { return "clientes" }
