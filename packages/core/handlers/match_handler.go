package handlers

import (
	"net/http"
	"strconv"

	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/services"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchService      *services.MatchService
	settlementService *services.SettlementService
}

func NewMatchHandler(matchService *services.MatchService, settlementService *services.SettlementService) *MatchHandler {
	return &MatchHandler{
		matchService:      matchService,
		settlementService: settlementService,
	}
}

// GetMatches lists the matches of an edition
// @Summary List matches
// @Description Matches of the given edition, the latest edition when edition_id is omitted
// @Tags matches
// @Produce json
// @Param edition_id query int false "Edition ID (year)"
// @Success 200 {array} models.MatchListItem
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /matches [get]
func (h *MatchHandler) GetMatches(c *gin.Context) {
	var editionID uint
	if v := c.Query("edition_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			badRequest(c, "Invalid edition_id parameter")
			return
		}
		editionID = uint(id)
	}

	matches, err := h.matchService.List(c.Request.Context(), editionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// GetMatch returns one match with its roster
// @Summary Get a match
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} models.Match
// @Failure 404 {object} map[string]string
// @Router /matches/{id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	match, err := h.matchService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// GetMatchResults returns the stored results of a match
// @Summary Get match results
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {array} models.MatchResult
// @Failure 404 {object} map[string]string
// @Router /matches/{id}/results [get]
func (h *MatchHandler) GetMatchResults(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	results, err := h.matchService.Results(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// CreateMatch schedules a match
// @Summary Create a match
// @Description Every player must be enrolled in the edition. PVP matches take exactly two players.
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param match body models.CreateMatchRequest true "Match data"
// @Success 201 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req models.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	match, err := h.matchService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, match)
}

// UpdateMatch rewrites a match and its roster
// @Summary Update a match
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param match body models.UpdateMatchRequest true "Match data"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/{id} [put]
func (h *MatchHandler) UpdateMatch(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req models.UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	match, err := h.matchService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// DeleteMatch removes a match with its results
// @Summary Delete a match
// @Tags matches
// @Security BearerAuth
// @Param id path int true "Match ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /matches/{id} [delete]
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.matchService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SubmitResults records the outcome of a match
// @Summary Submit match results
// @Description Replaces any previous results. Group phase results update the standings and category statistics; a final grants the edition champion achievement. Everything commits together.
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param results body models.SubmitResultRequest true "One entry per player"
// @Success 200 {object} models.SettlementOutcome
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /matches/{id}/results [post]
func (h *MatchHandler) SubmitResults(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req models.SubmitResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	outcome, err := h.settlementService.Submit(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}
