package controllers

import (
	"strconv"

	"github.com/VinitO1/Food-Order-Catering/pkg/resp"
	"github.com/VinitO1/Food-Order-Catering/services"
	"github.com/VinitO1/Food-Order-Catering/utils"
	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /api/cart
func (h *CartController) Get(c *gin.Context) {
	lines, subtotal, err := h.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": lines, "subtotal": subtotal})
}

// POST /api/cart/add
func (h *CartController) Add(c *gin.Context) {
	var req services.AddItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	line, err := h.Svc.AddItem(utils.CurrentUserID(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, line)
}

// PUT /api/cart/update/:id
func (h *CartController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid cart item id")
		return
	}
	var body struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	line, err := h.Svc.SetQuantity(utils.CurrentUserID(c), uint(id), body.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, line)
}

// DELETE /api/cart/remove/:id
func (h *CartController) Remove(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid cart item id")
		return
	}
	if err := h.Svc.RemoveItem(utils.CurrentUserID(c), uint(id)); err != nil {
		writeError(c, err)
		return
	}
	resp.OKMessage(c, nil, "item removed")
}

// DELETE /api/cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		writeError(c, err)
		return
	}
	resp.OKMessage(c, nil, "cart cleared")
}
