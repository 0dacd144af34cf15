package entity

import (
	"gorm.io/gorm"
)

type Menu struct {
	gorm.Model
	MenuName  string `json:"menuName"`
	Detail    string `json:"detail"`
	Price     int64  `json:"price"` // cents
	Available bool   `gorm:"not null;default:true" json:"available"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload เมื่อจำเป็น

	Options    []MenuOption `json:"-"`
	OrderItems []OrderItem  `json:"-"`
}
