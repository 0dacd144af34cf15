package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`

	// เงื่อนไขการสั่ง (หน่วยเป็นสตางค์/cents)
	MinOrder    int64 `json:"minOrder"`
	DeliveryFee int64 `json:"deliveryFee"`

	UserID uint `json:"userId"` // owner (users.id)
	User   User `json:"-"`

	Menus  []Menu  `json:"-"`
	Orders []Order `json:"-"`
}
