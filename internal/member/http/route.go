package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all member-related routes (including Auth).
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, partnerMiddleware gin.HandlerFunc) {
	// Public Routes
	authGroup := g.Group("/auth")
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/login", h.Login)
	}

	// Authenticated Routes
	g.GET("/me", authMiddleware, h.Me)

	// Partner Routes
	membersGroup := g.Group("/members")
	membersGroup.Use(authMiddleware, partnerMiddleware)
	{
		membersGroup.GET("", h.List)
		membersGroup.GET("/:id", h.Get)
		membersGroup.PATCH("/:id", h.Update)
	}
}
