package entity

import (
	"gorm.io/gorm"
)

type DiscountKind string

const (
	DiscountPercent DiscountKind = "PERCENT"
	DiscountFixed   DiscountKind = "FIXED"
)

type Promotion struct {
	gorm.Model
	Code   string `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Detail string `json:"detail"`

	Kind  DiscountKind `gorm:"size:10;not null" json:"kind"`
	Value int64        `json:"value"` // PERCENT: แต้มเปอร์เซ็นต์, FIXED: cents

	MinSubtotal int64 `json:"minSubtotal"` // cents
	MaxDiscount int64 `json:"maxDiscount"` // cents, 0 = ไม่จำกัดเพดาน
	Active      bool  `gorm:"not null;default:true" json:"active"`
}
