package entity

import (
	"gorm.io/gorm"
)

type FulfillmentType string

const (
	FulfillmentDelivery FulfillmentType = "DELIVERY"
	FulfillmentPickup   FulfillmentType = "PICKUP"
)

func (f FulfillmentType) Valid() bool {
	return f == FulfillmentDelivery || f == FulfillmentPickup
}

// Cart มีได้ตะกร้าเดียวต่อ user (uniqueIndex) — สร้างครั้งแรกตอนถูกเรียกใช้
// RestaurantID เป็น null ก็ต่อเมื่อตะกร้าว่าง
type Cart struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"uniqueIndex"`
	User   User `json:"-"`

	RestaurantID *uint       `json:"restaurantId"`
	Restaurant   *Restaurant `json:"-"`

	PromotionID *uint      `json:"promotionId"`
	Promotion   *Promotion `json:"-"`

	FulfillmentType     FulfillmentType `gorm:"size:16;not null;default:DELIVERY" json:"fulfillmentType"`
	SpecialInstructions string          `json:"specialInstructions"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
