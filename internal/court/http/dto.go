package http

import (
	"time"

	"github.com/pickleclub/reservation-backend/internal/court"
	"github.com/pickleclub/reservation-backend/internal/pkg/request"
)

// ListCourtsRequest defines query parameters for listing courts.
type ListCourtsRequest struct {
	request.ListParams
	VenueID string `form:"venue_id" binding:"omitempty,uuid"`
	Type    string `form:"type" binding:"omitempty,oneof=general rental"`
	Closed  *bool  `form:"closed"`
}

// CreateCourtRequest is the payload for POST /v1/courts.
type CreateCourtRequest struct {
	VenueID  string `json:"venue_id" binding:"required,uuid"`
	Name     string `json:"name" binding:"required"`
	Level    string `json:"level"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
	Type     string `json:"type" binding:"omitempty,oneof=general rental"`
}

// UpdateCourtRequest is the payload for PATCH /v1/courts/:id.
type UpdateCourtRequest struct {
	Name     *string `json:"name"`
	Level    *string `json:"level"`
	Capacity *int    `json:"capacity" binding:"omitempty,min=1"`
	Type     *string `json:"type" binding:"omitempty,oneof=general rental"`
	Closed   *bool   `json:"closed"`
}

// CourtResponse is the API shape of a court.
type CourtResponse struct {
	ID        string    `json:"id"`
	VenueID   string    `json:"venue_id"`
	Name      string    `json:"name"`
	Level     string    `json:"level"`
	Capacity  int       `json:"capacity"`
	Type      string    `json:"type"`
	Closed    bool      `json:"closed"`
	CreatedAt time.Time `json:"created_at"`
}

// CourtTag is a brief representation of a court.
type CourtTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewCourtResponse(c *court.Court) CourtResponse {
	return CourtResponse{
		ID:        c.ID,
		VenueID:   c.VenueID,
		Name:      c.Name,
		Level:     c.Level,
		Capacity:  c.Capacity,
		Type:      c.Type,
		Closed:    c.Closed,
		CreatedAt: c.CreatedAt,
	}
}
