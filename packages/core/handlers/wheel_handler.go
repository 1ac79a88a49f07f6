package handlers

import (
	"net/http"

	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/services"

	"github.com/gin-gonic/gin"
)

type WheelHandler struct {
	wheelService *services.WheelService
}

func NewWheelHandler(wheelService *services.WheelService) *WheelHandler {
	return &WheelHandler{wheelService: wheelService}
}

// Draw spins the reward wheel for the caller
// @Summary Spin the wheel
// @Description Checks that the wheel is enabled, that the daily quota is not exhausted and that an active reward exists, then draws one uniformly.
// @Tags wheel
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.DrawOutcome
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /wheel/draw [post]
func (h *WheelHandler) Draw(c *gin.Context) {
	player, ok := currentPlayer(c)
	if !ok {
		return
	}
	outcome, err := h.wheelService.Draw(c.Request.Context(), player)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// GetHistory returns the caller's latest draws
// @Summary Draw history
// @Tags wheel
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.DrawRecord
// @Router /wheel/history [get]
func (h *WheelHandler) GetHistory(c *gin.Context) {
	player, ok := currentPlayer(c)
	if !ok {
		return
	}
	history, err := h.wheelService.History(c.Request.Context(), player)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// GetStats returns the caller's quota for today
// @Summary Draw statistics
// @Tags wheel
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.DrawStats
// @Router /wheel/stats [get]
func (h *WheelHandler) GetStats(c *gin.Context) {
	player, ok := currentPlayer(c)
	if !ok {
		return
	}
	stats, err := h.wheelService.Stats(c.Request.Context(), player)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetItems lists wheel items
// @Summary List wheel items
// @Tags wheel
// @Produce json
// @Param active query bool false "Only active items"
// @Success 200 {array} models.RewardItem
// @Router /wheel/items [get]
func (h *WheelHandler) GetItems(c *gin.Context) {
	items, err := h.wheelService.ListItems(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateItem adds a wheel item
// @Summary Create a wheel item
// @Tags wheel
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param item body models.RewardItemRequest true "Item"
// @Success 201 {object} models.RewardItem
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /wheel/items [post]
func (h *WheelHandler) CreateItem(c *gin.Context) {
	var req models.RewardItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	item, err := h.wheelService.CreateItem(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateItem rewrites a wheel item
// @Summary Update a wheel item
// @Tags wheel
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param item body models.RewardItemRequest true "Item"
// @Success 200 {object} models.RewardItem
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /wheel/items/{id} [put]
func (h *WheelHandler) UpdateItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req models.RewardItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	item, err := h.wheelService.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem removes a wheel item
// @Summary Delete a wheel item
// @Tags wheel
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /wheel/items/{id} [delete]
func (h *WheelHandler) DeleteItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.wheelService.DeleteItem(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetConfig returns the wheel configuration
// @Summary Get wheel configuration
// @Tags wheel
// @Produce json
// @Success 200 {object} models.RewardConfig
// @Router /wheel/config [get]
func (h *WheelHandler) GetConfig(c *gin.Context) {
	cfg, err := h.wheelService.Config(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdateConfig enables the wheel or changes the daily quota
// @Summary Update wheel configuration
// @Tags wheel
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param config body models.RewardConfigRequest true "Fields to change"
// @Success 200 {object} models.RewardConfig
// @Failure 400 {object} map[string]string
// @Router /wheel/config [patch]
func (h *WheelHandler) UpdateConfig(c *gin.Context) {
	var req models.RewardConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	cfg, err := h.wheelService.UpdateConfig(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}
