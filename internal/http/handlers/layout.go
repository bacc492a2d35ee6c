package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitoapteka.kz/app/internal/modules/theme"
)

type LayoutHandler struct {
	theme *theme.Service
}

func NewLayoutHandler(svc *theme.Service) *LayoutHandler { return &LayoutHandler{theme: svc} }

// Layout: GET /api/layout
func (h *LayoutHandler) Layout(c *gin.Context) {
	c.JSON(http.StatusOK, h.theme.Layout(c.Request.Context()))
}
