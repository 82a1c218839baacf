package http

import (
	"net/http"

	demoService "anoa.com/gamificationdemo/internal/modules/demo/service"

	"anoa.com/gamificationdemo/internal/modules/demo/dto"
	"anoa.com/gamificationdemo/pkg/response"
	"anoa.com/gamificationdemo/pkg/validator"
	"github.com/gin-gonic/gin"
)

type DemoHandler struct {
	service demoService.DemoService
}

func NewDemoHandler(service demoService.DemoService) *DemoHandler {
	return &DemoHandler{service: service}
}

func (h *DemoHandler) GetLeaderboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GetLeaderboard(c.Request.Context()))
}

func (h *DemoHandler) GetBadges(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GetBadges(c.Request.Context()))
}

func (h *DemoHandler) GetUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GetUsers(c.Request.Context()))
}

func (h *DemoHandler) GetUserSummary(c *gin.Context) {
	userID := c.Param("user_id")

	summary, err := h.service.GetUserSummary(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *DemoHandler) AwardPoints(c *gin.Context) {
	var req dto.AwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	c.JSON(http.StatusOK, h.service.AwardPoints(c.Request.Context(), req))
}
