package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers photo routes. Serving is open to signed-in
// members; uploading and deleting are venue-operator actions.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, partnerMiddleware gin.HandlerFunc) {
	photos := g.Group("/photos")
	photos.Use(authMiddleware)
	{
		photos.GET("/:id", h.ServePhoto)
		photos.GET("/:id/thumbnail", h.ServeThumbnail)
	}

	photosManaged := photos.Group("")
	photosManaged.Use(partnerMiddleware)
	{
		photosManaged.DELETE("/:id", h.Delete)
	}

	courts := g.Group("/courts")
	courts.Use(authMiddleware)
	{
		courts.GET("/:id/photos", h.ListByCourt)
	}

	courtsManaged := courts.Group("")
	courtsManaged.Use(partnerMiddleware)
	{
		courtsManaged.POST("/:id/photos", h.Upload)
	}
}
