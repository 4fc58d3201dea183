package http

import (
	"time"

	"github.com/pickleclub/reservation-backend/internal/notice"
	"github.com/pickleclub/reservation-backend/internal/pkg/request"
)

// ListNoticesRequest defines query parameters for listing notices.
type ListNoticesRequest struct {
	request.ListParams
	VenueID string `form:"venue_id" binding:"omitempty,uuid"`
	Keyword string `form:"keyword"`
}

// CreateNoticeRequest is the payload for POST /v1/notices.
type CreateNoticeRequest struct {
	VenueID string `json:"venue_id" binding:"required,uuid"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Pinned  bool   `json:"pinned"`
}

// UpdateNoticeRequest is the payload for PATCH /v1/notices/:id.
type UpdateNoticeRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Pinned  *bool   `json:"pinned"`
}

// NoticeResponse is the API shape of a notice.
type NoticeResponse struct {
	ID        string    `json:"id"`
	VenueID   string    `json:"venue_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewNoticeResponse(n *notice.Notice) NoticeResponse {
	return NoticeResponse{
		ID:        n.ID,
		VenueID:   n.VenueID,
		Title:     n.Title,
		Content:   n.Content,
		Pinned:    n.Pinned,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
