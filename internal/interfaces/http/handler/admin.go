package handler

import (
	"github.com/ghiaccio/backend/internal/application/report"
	"github.com/ghiaccio/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles the administrator reporting endpoints
type AdminHandler struct {
	BaseHandler
	summaryService *report.SummaryService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(summaryService *report.SummaryService) *AdminHandler {
	return &AdminHandler{
		summaryService: summaryService,
	}
}

// RegisterRoutes registers the reporting routes, all admin-only
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/summary", middleware.RequireAdmin(), h.Summary)
	rg.GET("/freezers", middleware.RequireAdmin(), h.Freezers)
}

// Summary returns the dashboard aggregate over orders and ice stock
func (h *AdminHandler) Summary(c *gin.Context) {
	summary, err := h.summaryService.Summary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// Freezers lists all freezer units and their stock
func (h *AdminHandler) Freezers(c *gin.Context) {
	freezers, err := h.summaryService.Freezers(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, freezers)
}
