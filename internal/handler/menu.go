package handler

import (
	"bytes"
	"net/http"

	"cafeteria/internal/service"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct{ svc service.MenuService }

func NewMenuHandler(svc service.MenuService) *MenuHandler {
	return &MenuHandler{svc: svc}
}

// DescargarPDF GET /menu/pdf
func (h *MenuHandler) DescargarPDF(c *gin.Context) {
	// Buffered so a rendering failure can still produce a JSON error.
	var buf bytes.Buffer
	if err := h.svc.GenerarPDF(c.Request.Context(), &buf); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="menu.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
