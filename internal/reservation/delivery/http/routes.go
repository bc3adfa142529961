package http

import (
	"github.com/gin-gonic/gin"

	"giftlist/internal/middleware"
)

// RegisterRoutes maps reservation routes. Reserve/Unreserve work for
// anonymous visitors, keyed by the identification cookie; Transfer requires
// an authenticated user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/lists/:list_id/items/:id/reserve", mw.Identify(), h.Reserve)
	rg.DELETE("/reservations/:id", mw.Identify(), h.Unreserve)
	rg.POST("/identity/transfer", mw.Auth(), h.Transfer)
}
