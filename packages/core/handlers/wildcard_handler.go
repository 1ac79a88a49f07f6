package handlers

import (
	"net/http"

	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/services"

	"github.com/gin-gonic/gin"
)

type WildcardHandler struct {
	wildcardService *services.WildcardService
}

func NewWildcardHandler(wildcardService *services.WildcardService) *WildcardHandler {
	return &WildcardHandler{wildcardService: wildcardService}
}

// GetWildcards lists wildcard definitions
// @Summary List wildcards
// @Tags wildcards
// @Produce json
// @Success 200 {array} models.Wildcard
// @Router /wildcards [get]
func (h *WildcardHandler) GetWildcards(c *gin.Context) {
	wildcards, err := h.wildcardService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wildcards)
}

// CreateWildcard defines a wildcard
// @Summary Create a wildcard
// @Tags wildcards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param wildcard body models.CreateWildcardRequest true "Wildcard"
// @Success 201 {object} models.Wildcard
// @Failure 400 {object} map[string]string
// @Router /wildcards [post]
func (h *WildcardHandler) CreateWildcard(c *gin.Context) {
	var req models.CreateWildcardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	wc, err := h.wildcardService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, wc)
}

// GetMyWildcards lists the caller's wildcards
// @Summary My wildcards
// @Tags wildcards
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.WildcardGrant
// @Router /me/wildcards [get]
func (h *WildcardHandler) GetMyWildcards(c *gin.Context) {
	player, ok := currentPlayer(c)
	if !ok {
		return
	}
	grants, err := h.wildcardService.PlayerGrants(c.Request.Context(), player)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, grants)
}

// UseWildcard spends one of the caller's wildcards
// @Summary Use a wildcard
// @Tags wildcards
// @Security BearerAuth
// @Produce json
// @Param grantId path int true "Grant ID"
// @Success 200 {object} models.WildcardGrant
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /me/wildcards/{grantId}/use [post]
func (h *WildcardHandler) UseWildcard(c *gin.Context) {
	player, ok := currentPlayer(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "grantId")
	if !ok {
		return
	}
	grant, err := h.wildcardService.Use(c.Request.Context(), player, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, grant)
}
