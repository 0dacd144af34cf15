package configs

import (
	"log"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// สร้าง admin ครั้งแรก
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// Seed ข้อมูลตัวอย่างสำหรับ dev: ร้าน เมนู โปร และผู้ใช้หนึ่งคน
func SeedDemo() error {
	db := DB()

	var count int64
	db.Model(&entity.Restaurant{}).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	user := entity.User{
		Email: "demo@example.com", Password: string(hash),
		FirstName: "Demo", LastName: "User", Role: "customer",
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	rest := entity.Restaurant{
		Name: "Krua Baan Suan", Address: "12 Sukhumvit Rd",
		MinOrder: 1000, DeliveryFee: 200,
	}
	if err := db.Create(&rest).Error; err != nil {
		return err
	}

	menus := []entity.Menu{
		{MenuName: "Pad Krapow", Price: 500, RestaurantID: rest.ID, Available: true},
		{MenuName: "Tom Yum", Price: 300, RestaurantID: rest.ID, Available: true},
		{MenuName: "Khao Soi", Price: 450, RestaurantID: rest.ID, Available: true},
	}
	if err := db.Create(&menus).Error; err != nil {
		return err
	}
	if err := db.Create(&entity.MenuOption{
		MenuID: menus[0].ID, Name: "Fried Egg", PriceAdjustment: 100,
	}).Error; err != nil {
		return err
	}

	promos := []entity.Promotion{
		{Code: "WELCOME10", Kind: entity.DiscountPercent, Value: 10, MinSubtotal: 0, MaxDiscount: 500, Active: true},
		{Code: "SAVE200", Kind: entity.DiscountFixed, Value: 200, MinSubtotal: 2000, Active: true},
	}
	if err := db.Create(&promos).Error; err != nil {
		return err
	}

	if err := db.Create(&entity.Address{
		UserID: user.ID, Label: "Home", Line1: "99 Rama IV", City: "Bangkok", Phone: "0800000000", Default: true,
	}).Error; err != nil {
		return err
	}
	return db.Create(&entity.PaymentMethod{
		UserID: user.ID, Label: "Visa", Brand: "visa", Last4: "4242", ProcessorRef: "pm_demo",
	}).Error
}
