package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

// CatalogRepository อ่านข้อมูลร้าน/เมนู/option — ฝั่ง cart ใช้แค่ lookup ราคา
type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

func (r *CatalogRepository) GetMenuBasics(menuID uint) (*entity.Menu, error) {
	var m entity.Menu
	if err := r.DB.Select("id, price, restaurant_id, available, menu_name").First(&m, menuID).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GetOptionsForMenu คืน option ตาม id ที่ขอ เฉพาะที่เป็นของเมนูนี้จริง
func (r *CatalogRepository) GetOptionsForMenu(menuID uint, ids []uint) ([]entity.MenuOption, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var opts []entity.MenuOption
	err := r.DB.Where("menu_id = ? AND id IN ?", menuID, ids).Find(&opts).Error
	return opts, err
}

func (r *CatalogRepository) GetRestaurantTerms(restID uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Select("id, min_order, delivery_fee, name").First(&rest, restID).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *CatalogRepository) IsOwnedBy(restID, userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND user_id = ?", restID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}

// MenuNames ใช้ตอนประกอบ view — map id -> ชื่อเมนู
func (r *CatalogRepository) MenuNames(ids []uint) (map[uint]string, error) {
	if len(ids) == 0 {
		return map[uint]string{}, nil
	}
	var rows []entity.Menu
	if err := r.DB.Select("id, menu_name").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[uint]string, len(rows))
	for _, m := range rows {
		out[m.ID] = m.MenuName
	}
	return out, nil
}
