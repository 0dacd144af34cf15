package services

import (
	"errors"
	"time"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/pricing"
	"backend/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	CartRepo    *repository.CartRepository
	CatalogRepo *repository.CatalogRepository
	PromoRepo   *repository.PromotionRepository
	ProfileRepo *repository.ProfileRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	catalogRepo *repository.CatalogRepository,
	promoRepo *repository.PromotionRepository,
	profileRepo *repository.ProfileRepository,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, CartRepo: cartRepo,
		CatalogRepo: catalogRepo, PromoRepo: promoRepo, ProfileRepo: profileRepo,
	}
}

// ----- DTOs -----

type PlaceOrderIn struct {
	AddressID       uint   `json:"addressId" binding:"required"`
	PaymentMethodID uint   `json:"paymentMethodId" binding:"required"`
	FulfillmentType string `json:"fulfillmentType" binding:"required,oneof=DELIVERY PICKUP"`
}

type OrderDetail struct {
	ID              uint                   `json:"id"`
	Status          entity.OrderStatus     `json:"status"`
	RestaurantID    uint                   `json:"restaurantId"`
	AddressID       uint                   `json:"addressId"`
	PaymentMethodID uint                   `json:"paymentMethodId"`
	FulfillmentType entity.FulfillmentType `json:"fulfillmentType"`
	Subtotal        int64                  `json:"subtotal"`
	DeliveryFee     int64                  `json:"deliveryFee"`
	ServiceFee      int64                  `json:"serviceFee"`
	Discount        int64                  `json:"discount"`
	Total           int64                  `json:"total"`
	PromoCode       string                 `json:"promoCode"`
	PlacedAt        time.Time              `json:"placedAt"`
	Items           []entity.OrderItem     `json:"items"`
}

func detailOf(o *entity.Order, items []entity.OrderItem) *OrderDetail {
	return &OrderDetail{
		ID: o.ID, Status: o.Status,
		RestaurantID: o.RestaurantID, AddressID: o.AddressID, PaymentMethodID: o.PaymentMethodID,
		FulfillmentType: o.FulfillmentType,
		Subtotal:        o.Subtotal, DeliveryFee: o.DeliveryFee, ServiceFee: o.ServiceFee,
		Discount: o.Discount, Total: o.Total,
		PromoCode: o.PromoCode, PlacedAt: o.PlacedAt, Items: items,
	}
}

// ----- Placement -----

// PlaceFromCart แปลงตะกร้าเป็นออเดอร์ใน transaction เดียว ล้มตรงไหน rollback หมด
// ขั้นตอน: ล็อกแถวตะกร้า -> ตรวจ -> คิดราคาสดจาก snapshot -> ตรวจ address/payment
// -> insert order + items -> ล้างตะกร้า -> commit
func (s *OrderService) PlaceFromCart(userID uint, in *PlaceOrderIn) (*OrderDetail, error) {
	ft := entity.FulfillmentType(in.FulfillmentType)
	if !ft.Valid() {
		return nil, apperr.New(apperr.Validation, "fulfillmentType must be DELIVERY or PICKUP")
	}

	var out *OrderDetail
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// ล็อกกันยิง place ซ้ำพร้อมกัน — ตัวที่รอจะเห็นตะกร้าว่างแล้วตกข้อ "cart is empty"
		cart, err := s.CartRepo.LockForPlacement(tx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.Validation, "cart is empty")
			}
			return err
		}
		if cart.RestaurantID == nil || len(cart.Items) == 0 {
			return apperr.New(apperr.Validation, "cart is empty")
		}

		// คิด subtotal ใหม่จาก snapshot เสมอ ไม่เชื่อยอดที่ client หรือ view ถืออยู่
		var subtotal int64
		for _, it := range cart.Items {
			subtotal += it.LineTotal()
		}

		rest, err := repository.NewCatalogRepository(tx).GetRestaurantTerms(*cart.RestaurantID)
		if err != nil {
			return err
		}
		if subtotal < rest.MinOrder {
			return apperr.New(apperr.MinimumOrderNotMet, "order is below the restaurant minimum").
				WithDetail("minimumOrderCents", rest.MinOrder).
				WithDetail("subtotalCents", subtotal)
		}

		// โปรต้องประเมินซ้ำกับยอดสด — เวลาผ่านไปเงื่อนไขอาจไม่เข้าแล้ว
		// ไม่เข้าเงื่อนไข = ส่วนลด 0 ไม่ใช่ reject ทั้งออเดอร์
		var discount int64
		var promoCode string
		if cart.PromotionID != nil {
			p, err := repository.NewPromotionRepository(tx).FindByID(*cart.PromotionID)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if p != nil {
				promoCode = p.Code
				discount = pricing.EvaluateDiscount(promoTerms(p), subtotal)
			}
		}

		var deliveryFee int64
		if ft == entity.FulfillmentDelivery {
			deliveryFee = rest.DeliveryFee
		}
		b := pricing.Compute(subtotal, deliveryFee, discount)

		profile := repository.NewProfileRepository(tx)
		if _, err := profile.AddressForUser(userID, in.AddressID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.NotFound, "address not found")
			}
			return err
		}
		if _, err := profile.PaymentMethodForUser(userID, in.PaymentMethodID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.NotFound, "payment method not found")
			}
			return err
		}

		order := entity.Order{
			Subtotal:        b.Subtotal,
			DeliveryFee:     b.DeliveryFee,
			ServiceFee:      b.ServiceFee,
			Discount:        b.Discount,
			Total:           b.Total,
			PromoCode:       promoCode,
			UserID:          userID,
			RestaurantID:    *cart.RestaurantID,
			AddressID:       in.AddressID,
			PaymentMethodID: in.PaymentMethodID,
			FulfillmentType: ft,
			Status:          entity.StatusConfirmed,
			PlacedAt:        time.Now(),
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		// ย้าย snapshot จาก cart -> order ตามเดิมทุกสตางค์
		items := make([]entity.OrderItem, 0, len(cart.Items))
		for _, it := range cart.Items {
			oi := entity.OrderItem{
				OrderID:   order.ID,
				MenuID:    it.MenuID,
				Qty:       it.Qty,
				UnitPrice: it.UnitPrice,
				Modifiers: it.Modifiers,
				Note:      it.Note,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			items = append(items, oi)
		}

		// ตะกร้ากลับสภาพเริ่มต้นใน transaction เดียวกัน
		if err := s.CartRepo.Reset(tx, cart.ID); err != nil {
			return err
		}

		out = detailOf(&order, items)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ----- Read -----

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "order not found")
		}
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return detailOf(o, items), nil
}

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

// ----- Reorder -----

// Reorder เติมรายการจากออเดอร์เก่ากลับลงตะกร้าที่ราคา snapshot เดิม
// ไม่ใช่ราคาปัจจุบันในเมนู
func (s *OrderService) Reorder(userID, orderID uint) error {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.NotFound, "order not found")
		}
		return err
	}

	cart, err := s.CartRepo.GetOrCreate(userID)
	if err != nil {
		return err
	}
	if cart.RestaurantID != nil && *cart.RestaurantID != o.RestaurantID {
		return apperr.New(apperr.RestaurantMismatch, "cart holds items from another restaurant")
	}

	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if cart.RestaurantID == nil {
			if err := s.CartRepo.UpdateCart(tx, cart.ID, map[string]any{"restaurant_id": o.RestaurantID}); err != nil {
				return err
			}
		}
		for _, it := range items {
			line := &entity.CartItem{
				MenuID:    it.MenuID,
				Qty:       it.Qty,
				UnitPrice: it.UnitPrice,
				Modifiers: it.Modifiers,
				Note:      it.Note,
			}
			if err := s.CartRepo.UpsertItem(tx, cart.ID, line); err != nil {
				return err
			}
		}
		return nil
	})
}
