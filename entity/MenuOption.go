package entity

import (
	"gorm.io/gorm"
)

// MenuOption คือ modifier ของเมนู เช่น เพิ่มไข่ / เพิ่มชีส
type MenuOption struct {
	gorm.Model
	MenuID uint `json:"menuId"`
	Menu   Menu `json:"-"`

	Name            string `json:"name"`
	PriceAdjustment int64  `json:"priceAdjustment"` // cents, may be negative
}
