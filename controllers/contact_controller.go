package controllers

import (
	"github.com/VinitO1/Food-Order-Catering/pkg/resp"
	"github.com/VinitO1/Food-Order-Catering/services"
	"github.com/gin-gonic/gin"
)

type ContactController struct{ Svc *services.ContactService }

func NewContactController(s *services.ContactService) *ContactController {
	return &ContactController{Svc: s}
}

// POST /api/contact
func (h *ContactController) Submit(c *gin.Context) {
	var req services.ContactMessageIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Submit(&req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OKMessage(c, gin.H{"id": out.ID}, "thanks for reaching out, we will get back to you")
}

// GET /api/admin/contact
func (h *ContactController) List(c *gin.Context) {
	out, err := h.Svc.List(0)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, out)
}
