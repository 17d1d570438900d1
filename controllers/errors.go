package controllers

import (
	"errors"

	"github.com/VinitO1/Food-Order-Catering/pkg/apperr"
	"github.com/VinitO1/Food-Order-Catering/pkg/resp"
	"github.com/gin-gonic/gin"
)

// writeError maps the service error taxonomy onto HTTP responses.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrAuthenticationRequired):
		resp.Unauthorized(c, "please sign in to continue")
	case errors.Is(err, apperr.ErrNotAuthorized):
		resp.Forbidden(c, "you do not have access to this resource")
	case errors.Is(err, apperr.ErrValidation):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, apperr.ErrEmptyCart):
		resp.BadRequest(c, "your cart is empty")
	case errors.Is(err, apperr.ErrInvalidStateTransition):
		resp.Conflict(c, "order status has already changed")
	default:
		resp.ServerError(c, err)
	}
}
