package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pickleclub/reservation-backend/internal/court"
	"github.com/pickleclub/reservation-backend/internal/pkg/apperror"
	"github.com/pickleclub/reservation-backend/internal/pkg/errcode"
	"github.com/pickleclub/reservation-backend/internal/pkg/response"
)

type Handler struct {
	service court.Service
}

func NewHandler(service court.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListCourtsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, errcode.ValidationError))
		return
	}
	req.Normalize()

	courts, total, err := h.service.List(c.Request.Context(), court.Filter{
		VenueID:  req.VenueID,
		Type:     req.Type,
		Closed:   req.Closed,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]CourtResponse, len(courts))
	for i, ct := range courts {
		items[i] = NewCourtResponse(ct)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, errcode.ValidationError))
		return
	}

	ct, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCourtResponse(ct))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, errcode.ValidationError))
		return
	}

	ct, err := h.service.Create(c.Request.Context(), court.CreateRequest{
		VenueID:  req.VenueID,
		Name:     req.Name,
		Level:    req.Level,
		Capacity: req.Capacity,
		Type:     req.Type,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewCourtResponse(ct))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, errcode.ValidationError))
		return
	}

	var req UpdateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, errcode.ValidationError))
		return
	}

	ct, err := h.service.Update(c.Request.Context(), id, court.UpdateRequest{
		Name:     req.Name,
		Level:    req.Level,
		Capacity: req.Capacity,
		Type:     req.Type,
		Closed:   req.Closed,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCourtResponse(ct))
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
