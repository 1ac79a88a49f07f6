package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DanCG7040/RealTaker-cup-backend/packages/auth"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/services"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error kind to its HTTP status. Persistence failures are
// reported without detail; the service layer has already logged them.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": services.Message(err)})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// idParam parses a positive numeric path parameter. It writes the 400 response itself.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		badRequest(c, "Invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}

// currentPlayer returns the nickname of the authenticated caller.
func currentPlayer(c *gin.Context) (string, bool) {
	nickname, ok := auth.GetNickname(c)
	if !ok || nickname == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return "", false
	}
	return nickname, true
}
