package controllers

import (
	"strconv"

	"github.com/VinitO1/Food-Order-Catering/pkg/resp"
	"github.com/VinitO1/Food-Order-Catering/repository"
	"github.com/VinitO1/Food-Order-Catering/services"
	"github.com/gin-gonic/gin"
)

type RestaurantController struct{ Svc *services.RestaurantService }

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /api/restaurants?cuisine=&city=&catering=true
func (h *RestaurantController) List(c *gin.Context) {
	f := repository.RestaurantFilter{
		CuisineType:  c.Query("cuisine"),
		City:         c.Query("city"),
		CateringOnly: c.Query("catering") == "true",
	}
	out, err := h.Svc.List(f)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/restaurants/:id
func (h *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	out, err := h.Svc.Get(uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/restaurants/:id/menu
func (h *RestaurantController) Menu(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	out, err := h.Svc.Menu(uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, out)
}
