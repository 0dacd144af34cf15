package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	MenuID uint `json:"menuId"`
	Menu   Menu `json:"-"`

	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"` // cents, snapshot ตอนหยิบลงตะกร้า
	Modifiers int64  `json:"modifiers"` // cents, ผลรวม option ตอนหยิบลงตะกร้า
	Note      string `json:"note"`
}

// LineTotal is always derived from the snapshots, never stored.
func (ci *CartItem) LineTotal() int64 {
	return int64(ci.Qty) * (ci.UnitPrice + ci.Modifiers)
}
