package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	view, err := h.Svc.Get(uid)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /cart/items
func (h *CartController) AddItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req services.AddItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	view, err := h.Svc.Add(uid, &req)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, view)
}

// PATCH /cart/items/:id
func (h *CartController) UpdateItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	var body struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	view, err := h.Svc.UpdateQty(uid, uint(itemID), body.Quantity)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, view)
}

// DELETE /cart/items/:id
func (h *CartController) RemoveItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	view, err := h.Svc.RemoveItem(uid, uint(itemID))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /cart/promo
func (h *CartController) ApplyPromo(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var body struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	view, err := h.Svc.ApplyPromo(uid, body.Code)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, view)
}

// DELETE /cart/promo
func (h *CartController) RemovePromo(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	view, err := h.Svc.RemovePromo(uid)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, view)
}

// PATCH /cart
func (h *CartController) Patch(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req services.PatchCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	view, err := h.Svc.Patch(uid, &req)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, view)
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	view, err := h.Svc.Clear(uid)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, view)
}
