package entity

import (
	"time"

	"gorm.io/gorm"
)

// Order ถูกสร้างจาก placement transaction เท่านั้น
// ราคาและรายการห้ามแก้หลังสร้าง — เปลี่ยนได้เฉพาะ Status
type Order struct {
	gorm.Model
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	ServiceFee  int64 `json:"serviceFee"`
	Discount    int64 `json:"discount"`
	Total       int64 `json:"total"`

	PromoCode string `json:"promoCode"` // snapshot ของโค้ดที่ใช้ ("" = ไม่ใช้)

	UserID uint `json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload เมื่อจำเป็น

	AddressID uint    `json:"addressId"`
	Address   Address `json:"-"`

	PaymentMethodID uint          `json:"paymentMethodId"`
	PaymentMethod   PaymentMethod `json:"-"`

	FulfillmentType FulfillmentType `gorm:"size:16;not null" json:"fulfillmentType"`
	Status          OrderStatus     `gorm:"size:16;not null" json:"status"`
	PlacedAt        time.Time       `json:"placedAt"`

	// preload แค่ตอน detail
	OrderItems []OrderItem `json:"-"`
}
