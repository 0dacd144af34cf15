package controllers

import (
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /orders
func (h *OrderController) Place(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req services.PlaceOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	detail, err := h.Svc.PlaceFromCart(uid, &req)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, detail)
}

// GET /orders
func (h *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := h.Svc.ListForUser(uid, limit)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	detail, err := h.Svc.DetailForUser(uid, uint(orderID))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, detail)
}

// POST /orders/:id/reorder
func (h *OrderController) Reorder(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	if err := h.Svc.Reorder(uid, uint(orderID)); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"reordered": true})
}

// PATCH /orders/:id/cancel
func (h *OrderController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	detail, err := h.Svc.Cancel(uid, uint(orderID))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, detail)
}

// PATCH /admin/orders/:id/status
func (h *OrderController) UpdateStatus(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	next, ok := entity.ParseOrderStatus(body.Status)
	if !ok {
		resp.BadRequest(c, "unknown status")
		return
	}
	o, err := h.Svc.UpdateStatus(uid, utils.CurrentRole(c), uint(orderID), next)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, o)
}
