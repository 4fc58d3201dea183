package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers reservation-related routes. All of them require a
// signed-in member; the policy gates themselves run in the service.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("")
	group.Use(authMiddleware)
	{
		group.GET("/board", h.Board)
		group.POST("/reservations", h.Join)
		group.DELETE("/reservations", h.Cancel)
		group.GET("/reservations/mine", h.ListMine)
	}
}
