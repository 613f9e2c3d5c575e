package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
)

// --------------------------------------------------
// Parâmetros de rota / query
// --------------------------------------------------

func idParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		httperr.BadRequest(c, "invalid_request", httperr.Message("invalid_request"))
		return 0, false
	}
	return uint(v), true
}

// optionalUint lê ?name= (vazio = nil). Valor inválido responde 400.
func optionalUint(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", httperr.Message("invalid_request"))
		return nil, false
	}
	u := uint(v)
	return &u, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(400, httperr.HTTPError{
			Code:    "invalid_request",
			Message: httperr.Message("invalid_request"),
			Details: map[string]any{"error": err.Error()},
		})
		return false
	}
	return true
}
