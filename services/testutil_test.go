package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"backend/entity"
	"backend/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

type fixture struct {
	DB       *gorm.DB
	Cart     *CartService
	Orders   *OrderService
	UserID   uint
	User2ID  uint
	Rest1    entity.Restaurant // MinOrder 1000, DeliveryFee 200
	Rest2    entity.Restaurant
	MenuA    entity.Menu // 500
	MenuB    entity.Menu // 300
	MenuC    entity.Menu // 700, restaurant 2
	EggOpt   entity.MenuOption
	Addr     entity.Address
	Payment  entity.PaymentMethod
	Addr2    entity.Address        // belongs to user 2
	Payment2 entity.PaymentMethod  // belongs to user 2
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.Menu{}, &entity.MenuOption{},
		&entity.Promotion{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Address{}, &entity.PaymentMethod{},
	))

	f := &fixture{DB: db}

	u1 := entity.User{Email: "u1@test.local", Role: "customer"}
	u2 := entity.User{Email: "u2@test.local", Role: "customer"}
	require.NoError(t, db.Create(&u1).Error)
	require.NoError(t, db.Create(&u2).Error)
	f.UserID, f.User2ID = u1.ID, u2.ID

	f.Rest1 = entity.Restaurant{Name: "Krua One", MinOrder: 1000, DeliveryFee: 200}
	f.Rest2 = entity.Restaurant{Name: "Krua Two", MinOrder: 0, DeliveryFee: 150}
	require.NoError(t, db.Create(&f.Rest1).Error)
	require.NoError(t, db.Create(&f.Rest2).Error)

	f.MenuA = entity.Menu{MenuName: "Pad Krapow", Price: 500, RestaurantID: f.Rest1.ID, Available: true}
	f.MenuB = entity.Menu{MenuName: "Tom Yum", Price: 300, RestaurantID: f.Rest1.ID, Available: true}
	f.MenuC = entity.Menu{MenuName: "Khao Soi", Price: 700, RestaurantID: f.Rest2.ID, Available: true}
	require.NoError(t, db.Create(&f.MenuA).Error)
	require.NoError(t, db.Create(&f.MenuB).Error)
	require.NoError(t, db.Create(&f.MenuC).Error)

	f.EggOpt = entity.MenuOption{MenuID: f.MenuA.ID, Name: "Fried Egg", PriceAdjustment: 100}
	require.NoError(t, db.Create(&f.EggOpt).Error)

	require.NoError(t, db.Create(&[]entity.Promotion{
		{Code: "WELCOME10", Kind: entity.DiscountPercent, Value: 10, MaxDiscount: 500, Active: true},
		{Code: "SAVE200", Kind: entity.DiscountFixed, Value: 200, MinSubtotal: 2000, Active: true},
		{Code: "EXPIRED", Kind: entity.DiscountPercent, Value: 20, Active: false},
	}).Error)
	// gorm ข้าม zero value เมื่อคอลัมน์มี default:true เลยต้องบังคับเขียน false ตรง ๆ
	require.NoError(t, db.Model(&entity.Promotion{}).Where("code = ?", "EXPIRED").Update("active", false).Error)

	f.Addr = entity.Address{UserID: u1.ID, Label: "Home", Line1: "99 Rama IV", City: "Bangkok"}
	f.Payment = entity.PaymentMethod{UserID: u1.ID, Label: "Visa", Last4: "4242"}
	f.Addr2 = entity.Address{UserID: u2.ID, Label: "Work", Line1: "1 Silom", City: "Bangkok"}
	f.Payment2 = entity.PaymentMethod{UserID: u2.ID, Label: "Cash", Last4: ""}
	require.NoError(t, db.Create(&f.Addr).Error)
	require.NoError(t, db.Create(&f.Payment).Error)
	require.NoError(t, db.Create(&f.Addr2).Error)
	require.NoError(t, db.Create(&f.Payment2).Error)

	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	promoRepo := repository.NewPromotionRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	f.Cart = NewCartService(db, cartRepo, catalogRepo, promoRepo)
	f.Orders = NewOrderService(db, orderRepo, cartRepo, catalogRepo, promoRepo, profileRepo)
	return f
}

// ตะกร้ามาตรฐานของ user 1: Pad Krapow x2 + Tom Yum x1 = subtotal 1300
func (f *fixture) fillCart(t *testing.T) *CartView {
	t.Helper()
	_, err := f.Cart.Add(f.UserID, &AddItemIn{MenuItemID: f.MenuA.ID, Quantity: 2})
	require.NoError(t, err)
	view, err := f.Cart.Add(f.UserID, &AddItemIn{MenuItemID: f.MenuB.ID, Quantity: 1})
	require.NoError(t, err)
	return view
}
