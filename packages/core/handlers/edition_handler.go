package handlers

import (
	"net/http"

	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/services"

	"github.com/gin-gonic/gin"
)

type EditionHandler struct {
	editionService *services.EditionService
}

func NewEditionHandler(editionService *services.EditionService) *EditionHandler {
	return &EditionHandler{editionService: editionService}
}

// GetEditions lists every edition
// @Summary List editions
// @Tags editions
// @Produce json
// @Success 200 {array} models.Edition
// @Failure 500 {object} map[string]string
// @Router /editions [get]
func (h *EditionHandler) GetEditions(c *gin.Context) {
	editions, err := h.editionService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, editions)
}

// GetLatestEdition returns the active edition
// @Summary Get the latest edition
// @Description The edition with the highest id, with its participants and games
// @Tags editions
// @Produce json
// @Success 200 {object} models.Edition
// @Failure 404 {object} map[string]string
// @Router /editions/latest [get]
func (h *EditionHandler) GetLatestEdition(c *gin.Context) {
	edition, err := h.editionService.Latest(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, edition)
}

// GetEdition returns one edition
// @Summary Get an edition
// @Tags editions
// @Produce json
// @Param id path int true "Edition ID (year)"
// @Success 200 {object} models.Edition
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /editions/{id} [get]
func (h *EditionHandler) GetEdition(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	edition, err := h.editionService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, edition)
}

// GetEditionPlayers lists the players enrolled in an edition
// @Summary List enrolled players
// @Tags editions
// @Produce json
// @Param id path int true "Edition ID (year)"
// @Success 200 {array} string
// @Failure 404 {object} map[string]string
// @Router /editions/{id}/players [get]
func (h *EditionHandler) GetEditionPlayers(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	players, err := h.editionService.Players(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, players)
}

// CreateEdition creates an edition and archives the previous one
// @Summary Create an edition
// @Description Creates the edition and snapshots the standings of the edition right below it
// @Tags editions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param edition body models.CreateEditionRequest true "Edition data"
// @Success 201 {object} models.CreateEditionResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /editions [post]
func (h *EditionHandler) CreateEdition(c *gin.Context) {
	var req models.CreateEditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	resp, err := h.editionService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateEdition changes the dates of an edition
// @Summary Update an edition
// @Tags editions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Edition ID (year)"
// @Param edition body models.UpdateEditionRequest true "Dates to change"
// @Success 200 {object} models.Edition
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /editions/{id} [patch]
func (h *EditionHandler) UpdateEdition(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req models.UpdateEditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	edition, err := h.editionService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, edition)
}

// DeleteEdition removes an edition and its live data
// @Summary Delete an edition
// @Tags editions
// @Security BearerAuth
// @Param id path int true "Edition ID (year)"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /editions/{id} [delete]
func (h *EditionHandler) DeleteEdition(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.editionService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// EnrollPlayers replaces the roster of an edition
// @Summary Enroll players
// @Tags editions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Edition ID (year)"
// @Param players body models.EnrollPlayersRequest true "Player nicknames"
// @Success 200 {array} string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /editions/{id}/players [put]
func (h *EditionHandler) EnrollPlayers(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req models.EnrollPlayersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	players, err := h.editionService.Enroll(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, players)
}

// AssignGames replaces the games of an edition
// @Summary Assign games
// @Tags editions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Edition ID (year)"
// @Param games body models.AssignGamesRequest true "Game IDs"
// @Success 200 {array} int
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /editions/{id}/games [put]
func (h *EditionHandler) AssignGames(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req models.AssignGamesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	games, err := h.editionService.AssignGames(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}
