package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type PromotionRepository struct{ DB *gorm.DB }

func NewPromotionRepository(db *gorm.DB) *PromotionRepository {
	return &PromotionRepository{DB: db}
}

func (r *PromotionRepository) FindByCode(code string) (*entity.Promotion, error) {
	var p entity.Promotion
	if err := r.DB.Where("code = ?", code).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PromotionRepository) FindByID(id uint) (*entity.Promotion, error) {
	var p entity.Promotion
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
