package configs

import (
	"fmt"

	"backend/entity"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) error {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dial = mysql.Open(cfg.DBSource)
	case "sqlite":
		dial = sqlite.Open(cfg.DBSource)
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}

	// TranslateError ทำให้ duplicate key กลายเป็น gorm.ErrDuplicatedKey ทุก driver
	database, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}
	db = database
	return nil
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.Menu{}, &entity.MenuOption{},
		&entity.Promotion{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Address{}, &entity.PaymentMethod{},
	)
}
