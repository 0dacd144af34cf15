package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"backend/configs"
	"backend/entity"
	"backend/routes"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type checkoutEnv struct {
	router *gin.Engine
	db     *gorm.DB
	token  string

	menuA  entity.Menu // 500, restaurant 1
	menuB  entity.Menu // 300, restaurant 1
	menuC  entity.Menu // 700, restaurant 2
	addr   entity.Address
	pay    entity.PaymentMethod
}

var checkoutDBSeq atomic.Int64

func setupCheckoutEnv(t *testing.T) *checkoutEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:checkout%d?mode=memory&cache=shared", checkoutDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Restaurant{}, &entity.Menu{}, &entity.MenuOption{},
		&entity.Promotion{}, &entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{}, &entity.Address{}, &entity.PaymentMethod{},
	))

	user := entity.User{Email: "flow@test.local", Role: "customer"}
	require.NoError(t, db.Create(&user).Error)

	rest1 := entity.Restaurant{Name: "One", MinOrder: 1000, DeliveryFee: 200}
	rest2 := entity.Restaurant{Name: "Two", DeliveryFee: 150}
	require.NoError(t, db.Create(&rest1).Error)
	require.NoError(t, db.Create(&rest2).Error)

	env := &checkoutEnv{db: db}
	env.menuA = entity.Menu{MenuName: "Pad Krapow", Price: 500, RestaurantID: rest1.ID, Available: true}
	env.menuB = entity.Menu{MenuName: "Tom Yum", Price: 300, RestaurantID: rest1.ID, Available: true}
	env.menuC = entity.Menu{MenuName: "Khao Soi", Price: 700, RestaurantID: rest2.ID, Available: true}
	require.NoError(t, db.Create(&env.menuA).Error)
	require.NoError(t, db.Create(&env.menuB).Error)
	require.NoError(t, db.Create(&env.menuC).Error)

	require.NoError(t, db.Create(&entity.Promotion{
		Code: "WELCOME10", Kind: entity.DiscountPercent, Value: 10, MaxDiscount: 500, Active: true,
	}).Error)

	env.addr = entity.Address{UserID: user.ID, Label: "Home"}
	env.pay = entity.PaymentMethod{UserID: user.ID, Label: "Visa", Last4: "4242"}
	require.NoError(t, db.Create(&env.addr).Error)
	require.NoError(t, db.Create(&env.pay).Error)

	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
	token, err := utils.GenerateToken(user.ID, "customer", cfg.JWTSecret, cfg.JWTTTL)
	require.NoError(t, err)
	env.token = token

	router := gin.New()
	routes.RegisterRoutes(router, db, cfg)
	env.router = router
	return env
}

func (e *checkoutEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.token)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCheckoutFlow(t *testing.T) {
	env := setupCheckoutEnv(t)

	// เติมของ: 2x Pad Krapow + 1x Tom Yum
	w := env.do(t, "POST", "/cart/items", gin.H{"menuItemId": env.menuA.ID, "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = env.do(t, "POST", "/cart/items", gin.H{"menuItemId": env.menuB.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	// อ่านตะกร้า — ราคาครบทุกช่อง
	w = env.do(t, "GET", "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	pricing := body["data"].(map[string]any)["pricing"].(map[string]any)
	assert.Equal(t, float64(1300), pricing["subtotal"])
	assert.Equal(t, float64(200), pricing["deliveryFee"])
	assert.Equal(t, float64(65), pricing["serviceFee"])
	assert.Equal(t, float64(1565), pricing["total"])
	assert.Equal(t, float64(3), pricing["itemCount"])

	// ร้านอื่นห้ามปน — 409 พร้อมตะกร้าปัจจุบันใน details
	w = env.do(t, "POST", "/cart/items", gin.H{"menuItemId": env.menuC.ID, "quantity": 1})
	require.Equal(t, http.StatusConflict, w.Code)
	body = decode(t, w)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "RESTAURANT_MISMATCH", errObj["code"])
	assert.NotNil(t, errObj["details"].(map[string]any)["cart"])

	// โปรไม่มีจริง
	w = env.do(t, "POST", "/cart/promo", gin.H{"code": "NOPE"})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, "POST", "/cart/promo", gin.H{"code": "WELCOME10"})
	require.Equal(t, http.StatusOK, w.Code)

	// place
	w = env.do(t, "POST", "/orders", gin.H{
		"addressId":       env.addr.ID,
		"paymentMethodId": env.pay.ID,
		"fulfillmentType": "DELIVERY",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body = decode(t, w)
	order := body["data"].(map[string]any)
	assert.Equal(t, "CONFIRMED", order["status"])
	assert.Equal(t, float64(130), order["discount"])
	assert.Equal(t, float64(1565-130), order["total"])
	orderID := uint(order["id"].(float64))

	// ตะกร้าว่างแล้ว place ซ้ำต้องล้ม
	w = env.do(t, "POST", "/orders", gin.H{
		"addressId":       env.addr.ID,
		"paymentMethodId": env.pay.ID,
		"fulfillmentType": "DELIVERY",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body = decode(t, w)
	assert.Equal(t, "VALIDATION_ERROR", body["error"].(map[string]any)["code"])

	// อ่านออเดอร์กลับมา
	w = env.do(t, "GET", fmt.Sprintf("/orders/%d", orderID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// reorder แล้วตะกร้าได้ราคา snapshot เดิม
	w = env.do(t, "POST", fmt.Sprintf("/orders/%d/reorder", orderID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, true, body["data"].(map[string]any)["reordered"])
}

func TestRequestsWithoutTokenAreRejected(t *testing.T) {
	env := setupCheckoutEnv(t)

	req, err := http.NewRequest("GET", "/cart", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealth(t *testing.T) {
	env := setupCheckoutEnv(t)
	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
