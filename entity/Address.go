package entity

import (
	"gorm.io/gorm"
)

type Address struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	Label   string `json:"label"`
	Line1   string `json:"line1"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Default bool   `json:"default"`
}
