package services

import (
	"errors"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/pricing"
	"backend/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	CatalogRepo *repository.CatalogRepository
	PromoRepo   *repository.PromotionRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, cat *repository.CatalogRepository, pr *repository.PromotionRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, CatalogRepo: cat, PromoRepo: pr}
}

// ----- DTOs -----

type AddItemIn struct {
	MenuItemID uint   `json:"menuItemId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"min=1"`
	Notes      string `json:"notes"`
	OptionIDs  []uint `json:"optionIds"`
}

type PatchCartIn struct {
	FulfillmentType     *string `json:"fulfillmentType"`
	SpecialInstructions *string `json:"specialInstructions"`
}

type CartItemView struct {
	ID        uint   `json:"id"`
	MenuID    uint   `json:"menuItemId"`
	MenuName  string `json:"menuName"`
	Qty       int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	Modifiers int64  `json:"modifiers"`
	LineTotal int64  `json:"lineTotal"`
	Note      string `json:"notes"`
}

type CartPricingView struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	ServiceFee  int64 `json:"serviceFee"`
	Discount    int64 `json:"discount"`
	Total       int64 `json:"total"`
	ItemCount   int   `json:"itemCount"`
}

type CartView struct {
	ID                  uint                   `json:"id"`
	RestaurantID        *uint                  `json:"restaurantId"`
	FulfillmentType     entity.FulfillmentType `json:"fulfillmentType"`
	PromoCode           *string                `json:"promoCode"`
	SpecialInstructions string                 `json:"specialInstructions"`
	Items               []CartItemView         `json:"items"`
	Pricing             CartPricingView        `json:"pricing"`
}

// ----- Operations -----
// ทุก operation คืน view ที่คิดราคาใหม่ทั้งใบ ไม่ส่งของครึ่ง ๆ กลาง ๆ กลับไป

func (s *CartService) Get(userID uint) (*CartView, error) {
	if _, err := s.CartRepo.GetOrCreate(userID); err != nil {
		return nil, err
	}
	return s.view(userID)
}

func (s *CartService) Add(userID uint, in *AddItemIn) (*CartView, error) {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	cart, err := s.CartRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	m, err := s.CatalogRepo.GetMenuBasics(in.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "menu item not found")
		}
		return nil, err
	}
	if !m.Available {
		return nil, apperr.New(apperr.Validation, "menu item is not available")
	}

	// ตะกร้าล็อกร้านอื่นอยู่ -> ไม่ให้ข้ามร้าน แนบตะกร้าปัจจุบันไปให้ client ตัดสินใจ clear เอง
	if cart.RestaurantID != nil && *cart.RestaurantID != m.RestaurantID {
		cur, verr := s.view(userID)
		if verr != nil {
			return nil, verr
		}
		return nil, apperr.New(apperr.RestaurantMismatch, "cart holds items from another restaurant").
			WithDetail("cart", cur)
	}

	opts, err := s.CatalogRepo.GetOptionsForMenu(m.ID, in.OptionIDs)
	if err != nil {
		return nil, err
	}
	if len(opts) != len(in.OptionIDs) {
		return nil, apperr.New(apperr.Validation, "invalid option for this menu item")
	}
	var modifiers int64
	for _, o := range opts {
		modifiers += o.PriceAdjustment
	}

	line := &entity.CartItem{
		MenuID:    m.ID,
		Qty:       in.Quantity,
		UnitPrice: m.Price, // snapshot — ราคาขึ้นทีหลังไม่กระทบของในตะกร้า
		Modifiers: modifiers,
		Note:      in.Notes,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if cart.RestaurantID == nil {
			if err := s.CartRepo.UpdateCart(tx, cart.ID, map[string]any{"restaurant_id": m.RestaurantID}); err != nil {
				return err
			}
		}
		return s.CartRepo.UpsertItem(tx, cart.ID, line)
	})
	if err != nil {
		return nil, err
	}
	return s.view(userID)
}

func (s *CartService) UpdateQty(userID, itemID uint, qty int) (*CartView, error) {
	if qty < 1 {
		return nil, apperr.New(apperr.Validation, "quantity must be at least 1")
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.CartRepo.UpdateItemQty(tx, userID, itemID, qty)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.New(apperr.NotFound, "cart item not found")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.view(userID)
}

func (s *CartService) RemoveItem(userID, itemID uint) (*CartView, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.CartRepo.RemoveItem(tx, userID, itemID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.New(apperr.NotFound, "cart item not found")
		}
		// ชิ้นสุดท้ายหลุด -> ตะกร้ากลับสภาพเริ่มต้น
		return s.CartRepo.ResetIfEmpty(tx, userID)
	})
	if err != nil {
		return nil, err
	}
	return s.view(userID)
}

// ApplyPromo แนบโค้ดไว้ก่อนได้แม้ยอดยังไม่ถึงขั้นต่ำ
// เงื่อนไข MinSubtotal ไปเช็คตอนคิดราคา/ตอน place เท่านั้น
func (s *CartService) ApplyPromo(userID uint, code string) (*CartView, error) {
	p, err := s.PromoRepo.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "promo code not found")
		}
		return nil, err
	}
	if !p.Active {
		return nil, apperr.New(apperr.PromoInactive, "promo code is no longer active")
	}

	cart, err := s.CartRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if err := s.CartRepo.UpdateCart(s.DB, cart.ID, map[string]any{"promotion_id": p.ID}); err != nil {
		return nil, err
	}
	return s.view(userID)
}

func (s *CartService) RemovePromo(userID uint) (*CartView, error) {
	cart, err := s.CartRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if err := s.CartRepo.UpdateCart(s.DB, cart.ID, map[string]any{"promotion_id": nil}); err != nil {
		return nil, err
	}
	return s.view(userID)
}

func (s *CartService) Patch(userID uint, in *PatchCartIn) (*CartView, error) {
	if in.FulfillmentType == nil && in.SpecialInstructions == nil {
		return nil, apperr.New(apperr.Validation, "at least one field is required")
	}

	updates := map[string]any{}
	if in.FulfillmentType != nil {
		ft := entity.FulfillmentType(*in.FulfillmentType)
		if !ft.Valid() {
			return nil, apperr.New(apperr.Validation, "fulfillmentType must be DELIVERY or PICKUP")
		}
		updates["fulfillment_type"] = ft
	}
	if in.SpecialInstructions != nil {
		updates["special_instructions"] = *in.SpecialInstructions
	}

	cart, err := s.CartRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if err := s.CartRepo.UpdateCart(s.DB, cart.ID, updates); err != nil {
		return nil, err
	}
	return s.view(userID)
}

func (s *CartService) Clear(userID uint) (*CartView, error) {
	cart, err := s.CartRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Reset(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.view(userID)
}

// ----- view -----

func (s *CartService) view(userID uint) (*CartView, error) {
	cart, err := s.CartRepo.GetWithItems(userID)
	if err != nil {
		return nil, err
	}
	return s.buildView(cart)
}

// buildView คิดราคาสดจาก snapshot ทุกครั้ง ไม่มี cache ราคาที่คำนวณแล้ว
func (s *CartService) buildView(cart *entity.Cart) (*CartView, error) {
	menuIDs := make([]uint, 0, len(cart.Items))
	for _, it := range cart.Items {
		menuIDs = append(menuIDs, it.MenuID)
	}
	names, err := s.CatalogRepo.MenuNames(menuIDs)
	if err != nil {
		return nil, err
	}

	var subtotal int64
	itemCount := 0
	items := make([]CartItemView, 0, len(cart.Items))
	for _, it := range cart.Items {
		line := it.LineTotal()
		subtotal += line
		itemCount += it.Qty
		items = append(items, CartItemView{
			ID:        it.ID,
			MenuID:    it.MenuID,
			MenuName:  names[it.MenuID],
			Qty:       it.Qty,
			UnitPrice: it.UnitPrice,
			Modifiers: it.Modifiers,
			LineTotal: line,
			Note:      it.Note,
		})
	}

	var deliveryFee int64
	if cart.RestaurantID != nil && cart.FulfillmentType == entity.FulfillmentDelivery {
		rest, err := s.CatalogRepo.GetRestaurantTerms(*cart.RestaurantID)
		if err != nil {
			return nil, err
		}
		deliveryFee = rest.DeliveryFee
	}

	var promoCode *string
	var discount int64
	if cart.Promotion != nil {
		promoCode = &cart.Promotion.Code
		discount = pricing.EvaluateDiscount(promoTerms(cart.Promotion), subtotal)
	}

	b := pricing.Compute(subtotal, deliveryFee, discount)
	return &CartView{
		ID:                  cart.ID,
		RestaurantID:        cart.RestaurantID,
		FulfillmentType:     cart.FulfillmentType,
		PromoCode:           promoCode,
		SpecialInstructions: cart.SpecialInstructions,
		Items:               items,
		Pricing: CartPricingView{
			Subtotal:    b.Subtotal,
			DeliveryFee: b.DeliveryFee,
			ServiceFee:  b.ServiceFee,
			Discount:    b.Discount,
			Total:       b.Total,
			ItemCount:   itemCount,
		},
	}, nil
}
