package controllers

import (
	"github.com/VinitO1/Food-Order-Catering/entity"
	"github.com/VinitO1/Food-Order-Catering/pkg/resp"
	"github.com/VinitO1/Food-Order-Catering/services"
	"github.com/VinitO1/Food-Order-Catering/utils"
	"github.com/gin-gonic/gin"
)

type CateringController struct{ Svc *services.CateringService }

func NewCateringController(s *services.CateringService) *CateringController {
	return &CateringController{Svc: s}
}

// POST /api/catering
func (h *CateringController) Submit(c *gin.Context) {
	var req services.CateringRequestIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Submit(utils.CurrentUserID(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /api/catering
// Admins see the whole inbox; everyone else sees their own requests.
func (h *CateringController) List(c *gin.Context) {
	var (
		out []entity.CateringRequest
		err error
	)
	if utils.CurrentRole(c) == "admin" {
		out, err = h.Svc.ListAll(0)
	} else {
		out, err = h.Svc.ListForUser(utils.CurrentUserID(c))
	}
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, out)
}
