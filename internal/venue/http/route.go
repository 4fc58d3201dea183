package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers venue-related routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, partnerMiddleware gin.HandlerFunc) {
	group := g.Group("/venues")

	// Browsing venues is open to any signed-in member.
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
	}

	// Managing venues requires a partner account.
	managed := group.Group("")
	managed.Use(partnerMiddleware)
	{
		managed.POST("", h.Create)
		managed.PATCH("/:id", h.Update)
		managed.DELETE("/:id", h.Delete)
	}
}
