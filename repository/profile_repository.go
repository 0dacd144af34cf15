package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

// ProfileRepository — lookup ที่ต้องเช็คความเป็นเจ้าของเสมอ
// (ที่อยู่/ช่องทางจ่ายเงินของคนอื่นต้องมองไม่เห็น)
type ProfileRepository struct{ DB *gorm.DB }

func NewProfileRepository(db *gorm.DB) *ProfileRepository { return &ProfileRepository{DB: db} }

func (r *ProfileRepository) AddressForUser(userID, addressID uint) (*entity.Address, error) {
	var a entity.Address
	if err := r.DB.Where("id = ? AND user_id = ?", addressID, userID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ProfileRepository) PaymentMethodForUser(userID, pmID uint) (*entity.PaymentMethod, error) {
	var pm entity.PaymentMethod
	if err := r.DB.Where("id = ? AND user_id = ?", pmID, userID).First(&pm).Error; err != nil {
		return nil, err
	}
	return &pm, nil
}
