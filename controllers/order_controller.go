package controllers

import (
	"strconv"

	"github.com/VinitO1/Food-Order-Catering/pkg/resp"
	"github.com/VinitO1/Food-Order-Catering/services"
	"github.com/VinitO1/Food-Order-Catering/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /api/orders
func (h *OrderController) Place(c *gin.Context) {
	var req services.PlaceOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.PlaceOrder(utils.CurrentUserID(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /api/orders
func (h *OrderController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	orders, err := h.Svc.ListForUser(utils.CurrentUserID(c), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	out, err := h.Svc.DetailForUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /api/orders/:id/cancel
func (h *OrderController) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	if err := h.Svc.Cancel(utils.CurrentUserID(c), uint(id)); err != nil {
		writeError(c, err)
		return
	}
	resp.OKMessage(c, nil, "order cancelled")
}
