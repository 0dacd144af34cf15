package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"` // cents, copied from the cart snapshot
	Modifiers int64  `json:"modifiers"` // cents, copied from the cart snapshot
	Note      string `json:"note"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuID uint `json:"menuId"`
	Menu   Menu `json:"-"` // preload เฉพาะตอนต้องการชื่อเมนู
}

func (oi *OrderItem) LineTotal() int64 {
	return int64(oi.Qty) * (oi.UnitPrice + oi.Modifiers)
}
