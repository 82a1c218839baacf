package http

import (
	"net/http"

	diagnosticService "anoa.com/gamificationdemo/internal/modules/diagnostic/service"
	"github.com/gin-gonic/gin"
)

type DiagnosticHandler struct {
	service diagnosticService.DiagnosticService
}

func NewDiagnosticHandler(service diagnosticService.DiagnosticService) *DiagnosticHandler {
	return &DiagnosticHandler{service: service}
}

// TestDatabase always answers 200; the report carries any failure detail.
func (h *DiagnosticHandler) TestDatabase(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.CheckDatabase(c.Request.Context()))
}
