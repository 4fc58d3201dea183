package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pickleclub/reservation-backend/internal/auth"
	"github.com/pickleclub/reservation-backend/internal/photo"
	"github.com/pickleclub/reservation-backend/internal/pkg/apperror"
	"github.com/pickleclub/reservation-backend/internal/pkg/errcode"
	"github.com/pickleclub/reservation-backend/internal/pkg/response"
)

type Handler struct {
	service photo.Service
}

func NewHandler(service photo.Service) *Handler {
	return &Handler{service: service}
}

// Upload accepts a multipart form with a "photo" file for a court.
func (h *Handler) Upload(c *gin.Context) {
	courtID := c.Param("id")
	if _, err := uuid.Parse(courtID); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, errcode.ValidationError))
		return
	}

	header, err := c.FormFile("photo")
	if err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, errcode.ValidationError))
		return
	}

	p, err := h.service.Upload(c.Request.Context(), header, courtID, auth.GetMemberID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewPhotoResponse(p))
}

// ListByCourt lists the photo records of a court.
func (h *Handler) ListByCourt(c *gin.Context) {
	courtID := c.Param("id")
	if _, err := uuid.Parse(courtID); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, errcode.ValidationError))
		return
	}

	photos, err := h.service.ListByCourt(c.Request.Context(), courtID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		items[i] = NewPhotoResponse(p)
	}

	c.JSON(http.StatusOK, items)
}

// ServePhoto streams the photo content by ID.
func (h *Handler) ServePhoto(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, errcode.ValidationError))
		return
	}

	stream, p, err := h.service.Download(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", p.ContentType)
	c.Header("Content-Disposition", "inline; filename=\""+p.Filename+"\"")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		// Response already started; nothing sensible to send.
		return
	}
}

// ServeThumbnail streams the photo's thumbnail by ID.
func (h *Handler) ServeThumbnail(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, errcode.ValidationError))
		return
	}

	stream, p, err := h.service.DownloadThumbnail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", "image/jpeg")
	c.Header("Content-Disposition", "inline; filename=\""+p.Filename+"_thumb.jpg\"")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		return
	}
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, errcode.ValidationError))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
