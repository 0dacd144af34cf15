package repository

import (
	"errors"

	"backend/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetOrCreate คืนตะกร้าเดิมของ user หรือสร้างใหม่ถ้ายังไม่มี
// uniqueIndex ที่ user_id กันการสร้างซ้ำตอนยิงพร้อมกัน — ถ้าชน ให้ไปอ่านตัวที่ชนะมาแทน
func (r *CartRepository) GetOrCreate(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).First(&c).Error
	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c = entity.Cart{UserID: userID, FulfillmentType: entity.FulfillmentDelivery}
	if err := r.DB.Create(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var exist entity.Cart
			if err := r.DB.Where("user_id = ?", userID).First(&exist).Error; err != nil {
				return nil, err
			}
			return &exist, nil
		}
		return nil, err
	}
	return &c, nil
}

// GetWithItems โหลดตะกร้าพร้อมรายการ (เรียงตามลำดับที่หยิบ)
func (r *CartRepository) GetWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.id ASC") }).
		Preload("Promotion").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// LockForPlacement ล็อกแถวตะกร้าของ user ตลอด transaction (SELECT ... FOR UPDATE)
// sqlite ไม่มี FOR UPDATE — ใช้ single-writer lock ของมันแทนตอนรันเทสต์
func (r *CartRepository) LockForPlacement(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	q := tx
	if tx.Dialector.Name() != "sqlite" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var c entity.Cart
	if err := q.Where("user_id = ?", userID).First(&c).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("cart_id = ?", c.ID).Order("id ASC").Find(&c.Items).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// UpsertItem รวม line เดิมเมื่อเมนู+note+modifiers ตรงกัน ไม่งั้นเพิ่มแถวใหม่
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND menu_id = ? AND note = ? AND modifiers = ?",
		cartID, row.MenuID, row.Note, row.Modifiers).
		First(&exist).Error
	if err == nil {
		exist.Qty += row.Qty
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

// UpdateItemQty แก้จำนวนเฉพาะ item ที่อยู่ในตะกร้าของ user นี้เท่านั้น
func (r *CartRepository) UpdateItemQty(tx *gorm.DB, userID, itemID uint, qty int) (int64, error) {
	res := tx.Model(&entity.CartItem{}).
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", itemID, userID).
		Update("qty", qty)
	return res.RowsAffected, res.Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, itemID uint) (int64, error) {
	res := tx.Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", itemID, userID).
		Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

// ResetIfEmpty คืนตะกร้าเป็นสภาพเริ่มต้นเมื่อไม่มีรายการเหลือ
// (restaurant/promo หลุด — invariant: ผูกร้านก็ต่อเมื่อมีของ)
func (r *CartRepository) ResetIfEmpty(tx *gorm.DB, userID uint) error {
	return tx.Exec(`
		UPDATE carts SET restaurant_id = NULL, promotion_id = NULL
		 WHERE user_id = ?
		   AND NOT EXISTS (
		       SELECT 1 FROM cart_items ci
		        WHERE ci.cart_id = carts.id AND ci.deleted_at IS NULL
		   )
	`, userID).Error
}

// Reset ล้างตะกร้าทั้งใบกลับสภาพเริ่มต้น (ใช้ตอน clear และหลัง place order)
func (r *CartRepository) Reset(tx *gorm.DB, cartID uint) error {
	if err := tx.Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Model(&entity.Cart{}).Where("id = ?", cartID).
		Updates(map[string]any{
			"restaurant_id":        nil,
			"promotion_id":         nil,
			"special_instructions": "",
		}).Error
}

func (r *CartRepository) UpdateCart(tx *gorm.DB, cartID uint, updates map[string]any) error {
	return tx.Model(&entity.Cart{}).Where("id = ?", cartID).Updates(updates).Error
}
