package entity

import (
	"gorm.io/gorm"
)

// PaymentMethod ชี้ไปที่ payment processor ภายนอกด้วย ProcessorRef
// การตัดเงินจริงอยู่นอกระบบนี้
type PaymentMethod struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	Label        string `json:"label"`
	Brand        string `json:"brand"`
	Last4        string `json:"last4"`
	ProcessorRef string `json:"-"`
}
