package handler

import (
	"net/http"

	"cafeteria/internal/service"

	"github.com/gin-gonic/gin"
)

type BusquedaHandler struct{ svc service.BusquedaService }

func NewBusquedaHandler(svc service.BusquedaService) *BusquedaHandler {
	return &BusquedaHandler{svc: svc}
}

// Buscar GET /search/:term
func (h *BusquedaHandler) Buscar(c *gin.Context) {
	resp, err := h.svc.Buscar(c.Request.Context(), c.Param("term"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
