package handlers

import (
	"net/http"

	"github.com/DanCG7040/RealTaker-cup-backend/packages/auth"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/services"

	"github.com/gin-gonic/gin"
)

type AchievementHandler struct {
	achievementService *services.AchievementService
}

func NewAchievementHandler(achievementService *services.AchievementService) *AchievementHandler {
	return &AchievementHandler{achievementService: achievementService}
}

// GetAchievements lists achievement definitions
// @Summary List achievements
// @Tags achievements
// @Produce json
// @Success 200 {array} models.Achievement
// @Router /achievements [get]
func (h *AchievementHandler) GetAchievements(c *gin.Context) {
	achievements, err := h.achievementService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, achievements)
}

// CreateAchievement defines an achievement
// @Summary Create an achievement
// @Tags achievements
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param achievement body models.CreateAchievementRequest true "Achievement"
// @Success 201 {object} models.Achievement
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /achievements [post]
func (h *AchievementHandler) CreateAchievement(c *gin.Context) {
	var req models.CreateAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	achievement, err := h.achievementService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, achievement)
}

// GrantAchievement gives an achievement to a player
// @Summary Grant an achievement
// @Description Idempotent: granting an achievement the player holds reports alreadyHeld
// @Tags achievements
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param grant body models.GrantAchievementRequest true "Player and achievement name"
// @Success 200 {object} models.GrantResult
// @Failure 400 {object} map[string]string
// @Router /achievements/grants [post]
func (h *AchievementHandler) GrantAchievement(c *gin.Context) {
	var req models.GrantAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	grantedBy, _ := auth.GetNickname(c)
	result, err := h.achievementService.GrantAndNotify(c.Request.Context(), req.Player, req.Name, grantedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetMyAchievements lists the caller's achievements
// @Summary My achievements
// @Tags achievements
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.AchievementGrant
// @Router /me/achievements [get]
func (h *AchievementHandler) GetMyAchievements(c *gin.Context) {
	player, ok := currentPlayer(c)
	if !ok {
		return
	}
	grants, err := h.achievementService.PlayerAchievements(c.Request.Context(), player)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, grants)
}
