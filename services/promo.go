package services

import (
	"backend/entity"
	"backend/pkg/pricing"
)

// promoTerms แปลงแถว promotion เป็นเงื่อนไขล้วน ๆ ให้ evaluator
func promoTerms(p *entity.Promotion) *pricing.DiscountTerms {
	if p == nil {
		return nil
	}
	return &pricing.DiscountTerms{
		Percent:     p.Kind == entity.DiscountPercent,
		Value:       p.Value,
		MinSubtotal: p.MinSubtotal,
		MaxDiscount: p.MaxDiscount,
		Active:      p.Active,
	}
}
