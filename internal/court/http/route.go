package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers court-related routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, partnerMiddleware gin.HandlerFunc) {
	group := g.Group("/courts")

	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
	}

	managed := group.Group("")
	managed.Use(partnerMiddleware)
	{
		managed.POST("", h.Create)
		managed.PATCH("/:id", h.Update)
		managed.DELETE("/:id", h.Delete)
	}
}
