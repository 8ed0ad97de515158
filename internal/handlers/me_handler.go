package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bookeasy-app/booking-api/internal/identity"
	"github.com/bookeasy-app/booking-api/internal/middleware"
)

type MeHandler struct {
	provider identity.Provider
}

func NewMeHandler(provider identity.Provider) *MeHandler {
	return &MeHandler{provider: provider}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	ident, err := h.provider.Lookup(
		c.Request.Context(),
		strconv.FormatUint(uint64(userID), 10),
	)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": userPayload(ident),
	})
}

// currentUserID reads the authenticated user set by the auth middleware.
func currentUserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return 0, false
	}

	userID, ok := val.(uint)
	return userID, ok
}
