package handlers

import (
	"net/http"

	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/services"

	"github.com/gin-gonic/gin"
)

type PointsHandler struct {
	pointsService *services.PointsService
}

func NewPointsHandler(pointsService *services.PointsService) *PointsHandler {
	return &PointsHandler{pointsService: pointsService}
}

// GetPoints returns the points table
// @Summary Get points table
// @Tags points
// @Produce json
// @Success 200 {array} models.PointsRule
// @Router /points [get]
func (h *PointsHandler) GetPoints(c *gin.Context) {
	rules, err := h.pointsService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rules)
}

// UpsertPoints sets points per match kind and position
// @Summary Update points table
// @Tags points
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param rules body models.UpsertPointsRequest true "Rules"
// @Success 200 {array} models.PointsRule
// @Failure 400 {object} map[string]string
// @Router /points [put]
func (h *PointsHandler) UpsertPoints(c *gin.Context) {
	var req models.UpsertPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	rules, err := h.pointsService.Upsert(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rules)
}
