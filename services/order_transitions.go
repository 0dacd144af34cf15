package services

import (
	"errors"

	"backend/entity"
	"backend/pkg/apperr"

	"gorm.io/gorm"
)

// Cancel — ลูกค้ายกเลิกออเดอร์ตัวเองได้เฉพาะตอนยังเป็น CONFIRMED
// guard แบบ compare-and-swap: ถ้าร้านรับไปแล้วพอดี affected จะเป็น 0
func (s *OrderService) Cancel(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "order not found")
		}
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, entity.StatusConfirmed, entity.StatusCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.New(apperr.Validation, "order can no longer be cancelled")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.DetailForUser(userID, orderID)
}

// UpdateStatus — ร้าน (เจ้าของ) หรือ admin เดินสถานะตามตาราง transition เท่านั้น
func (s *OrderService) UpdateStatus(actorID uint, role string, orderID uint, next entity.OrderStatus) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "order not found")
		}
		return nil, err
	}

	if role != "admin" {
		ok, err := s.CatalogRepo.IsOwnedBy(o.RestaurantID, actorID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperr.New(apperr.Forbidden, "forbidden")
		}
	}

	if !o.Status.CanTransitionTo(next) {
		return nil, apperr.New(apperr.Validation, "invalid status transition").
			WithDetail("from", o.Status).
			WithDetail("to", next)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, next)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.New(apperr.Validation, "order status changed concurrently")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetOrder(orderID)
}
