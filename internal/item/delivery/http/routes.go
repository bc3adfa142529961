package http

import (
	"github.com/gin-gonic/gin"

	"giftlist/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. All item
// routes act on behalf of the list owner, so everything is behind Auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/lists/:list_id/items")
	{
		items.POST("", mw.Auth(), h.Create)
		items.GET("", mw.Auth(), h.List)
		items.DELETE("", mw.Auth(), h.DeleteAll)
		items.GET("/:id", mw.Auth(), h.Detail)
		items.PUT("/:id", mw.Auth(), h.Update)
		items.DELETE("/:id", mw.Auth(), h.Delete)
		items.POST("/:id/move", mw.Auth(), h.Move)
		items.POST("/:id/receive", mw.Auth(), h.Receive)
		items.POST("/:id/archive", mw.Auth(), h.Archive)
		items.POST("/:id/unarchive", mw.Auth(), h.Unarchive)
	}
}
