package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	promoRepo := repository.NewPromotionRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	// Services
	cartSvc := services.NewCartService(db, cartRepo, catalogRepo, promoRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, catalogRepo, promoRepo, profileRepo)

	// Controllers
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)

	// Cart
	cart := r.Group("/cart", auth)
	{
		cart.GET("", cartCtrl.Get)
		cart.PATCH("", cartCtrl.Patch)
		cart.DELETE("", cartCtrl.Clear)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items/:id", cartCtrl.UpdateItem)
		cart.DELETE("/items/:id", cartCtrl.RemoveItem)
		cart.POST("/promo", cartCtrl.ApplyPromo)
		cart.DELETE("/promo", cartCtrl.RemovePromo)
	}

	// Orders
	orders := r.Group("/orders", auth)
	{
		orders.POST("", orderCtrl.Place)
		orders.GET("", orderCtrl.ListForMe)
		orders.GET("/:id", orderCtrl.Detail)
		orders.POST("/:id/reorder", orderCtrl.Reorder)
		orders.PATCH("/:id/cancel", orderCtrl.Cancel)
	}

	// ร้าน/แอดมินเดินสถานะออเดอร์ (สิทธิ์ละเอียดเช็คใน service)
	r.PATCH("/admin/orders/:id/status",
		middlewares.AuthMiddleware(cfg.JWTSecret, "owner", "admin"),
		orderCtrl.UpdateStatus)
}
