package handlers

import (
	"net/http"
	"strconv"

	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/services"

	"github.com/gin-gonic/gin"
)

type StandingsHandler struct {
	standingsService *services.StandingsService
}

func NewStandingsHandler(standingsService *services.StandingsService) *StandingsHandler {
	return &StandingsHandler{standingsService: standingsService}
}

// GetStandings returns a standings table
// @Summary Get standings
// @Description Standings of the given edition, the latest edition when edition_id is omitted. Ordered by points then wins.
// @Tags standings
// @Produce json
// @Param edition_id query int false "Edition ID (year)"
// @Success 200 {object} models.StandingsResponse
// @Failure 400 {object} map[string]string
// @Router /standings [get]
func (h *StandingsHandler) GetStandings(c *gin.Context) {
	ctx := c.Request.Context()
	if v := c.Query("edition_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			badRequest(c, "Invalid edition_id parameter")
			return
		}
		table, err := h.standingsService.ForEdition(ctx, uint(id))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, table)
		return
	}

	table, err := h.standingsService.Current(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

// ResetStandings clears standings
// @Summary Reset standings
// @Description Deletes the standings of one edition, or of every edition when edition_id is omitted
// @Tags standings
// @Security BearerAuth
// @Produce json
// @Param edition_id query int false "Edition ID (year)"
// @Success 200 {object} map[string]int64
// @Failure 400 {object} map[string]string
// @Router /standings [delete]
func (h *StandingsHandler) ResetStandings(c *gin.Context) {
	var editionID *uint
	if v := c.Query("edition_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			badRequest(c, "Invalid edition_id parameter")
			return
		}
		e := uint(id)
		editionID = &e
	}
	deleted, err := h.standingsService.Reset(c.Request.Context(), editionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
