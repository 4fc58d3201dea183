package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pickleclub/reservation-backend/internal/auth"
	"github.com/pickleclub/reservation-backend/internal/pkg/apperror"
	"github.com/pickleclub/reservation-backend/internal/pkg/errcode"
	"github.com/pickleclub/reservation-backend/internal/pkg/response"
	"github.com/pickleclub/reservation-backend/internal/reservation"
)

type Handler struct {
	service reservation.Service
}

func NewHandler(service reservation.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Join(c *gin.Context) {
	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, errcode.ValidationError))
		return
	}

	res, err := h.service.Join(c.Request.Context(), reservation.JoinRequest{
		CourtID:  req.CourtID,
		GameDate: req.GameDate,
		TimeSlot: req.TimeSlot,
		MemberID: auth.GetMemberID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewReservationResponse(res))
}

func (h *Handler) Cancel(c *gin.Context) {
	var req CancelRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, errcode.ValidationError))
		return
	}

	err := h.service.Cancel(c.Request.Context(), reservation.CancelRequest{
		CourtID:  req.CourtID,
		GameDate: req.GameDate,
		TimeSlot: req.TimeSlot,
		MemberID: auth.GetMemberID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Board(c *gin.Context) {
	var req BoardRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, errcode.ValidationError))
		return
	}

	board, err := h.service.SlotBoard(c.Request.Context(), req.VenueID, req.GameDate, auth.GetMemberID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBoardResponse(board))
}

func (h *Handler) ListMine(c *gin.Context) {
	var req ListMineRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, errcode.ValidationError))
		return
	}
	req.Normalize()

	reservations, total, err := h.service.ListMine(c.Request.Context(), auth.GetMemberID(c), req.Page, req.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ReservationResponse, len(reservations))
	for i, res := range reservations {
		items[i] = NewReservationResponse(res)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}
