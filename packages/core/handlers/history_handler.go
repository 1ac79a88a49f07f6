package handlers

import (
	"net/http"

	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/services"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	snapshotService *services.SnapshotService
}

func NewHistoryHandler(snapshotService *services.SnapshotService) *HistoryHandler {
	return &HistoryHandler{snapshotService: snapshotService}
}

// GetSnapshots lists archived editions
// @Summary List snapshots
// @Tags history
// @Produce json
// @Success 200 {array} models.SnapshotSummary
// @Router /history [get]
func (h *HistoryHandler) GetSnapshots(c *gin.Context) {
	snapshots, err := h.snapshotService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshots)
}

// GetSnapshot returns the archived standings of an edition
// @Summary Get a snapshot
// @Tags history
// @Produce json
// @Param editionId path int true "Edition ID (year)"
// @Success 200 {object} models.SnapshotTable
// @Failure 404 {object} map[string]string
// @Router /history/{editionId} [get]
func (h *HistoryHandler) GetSnapshot(c *gin.Context) {
	id, ok := idParam(c, "editionId")
	if !ok {
		return
	}
	table, err := h.snapshotService.Table(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

// CreateSnapshot archives an edition on request
// @Summary Snapshot an edition
// @Description Archives the standings once. The outcome is created, alreadyExists or noData.
// @Tags history
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param editionId path int true "Edition ID (year)"
// @Param snapshot body models.CreateSnapshotRequest false "Reason"
// @Success 200 {object} models.SnapshotResult
// @Failure 404 {object} map[string]string
// @Router /history/{editionId} [post]
func (h *HistoryHandler) CreateSnapshot(c *gin.Context) {
	id, ok := idParam(c, "editionId")
	if !ok {
		return
	}
	var req models.CreateSnapshotRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request body")
			return
		}
	}
	result, err := h.snapshotService.SnapshotManual(c.Request.Context(), id, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
