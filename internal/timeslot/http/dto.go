package http

import (
	"time"

	"github.com/pickleclub/reservation-backend/internal/pkg/request"
	"github.com/pickleclub/reservation-backend/internal/timeslot"
)

// ListTimeSlotsRequest defines query parameters for listing time slots.
type ListTimeSlotsRequest struct {
	request.ListParams
	VenueID string `form:"venue_id" binding:"omitempty,uuid"`
}

// CreateTimeSlotRequest is the payload for POST /v1/time-slots.
type CreateTimeSlotRequest struct {
	VenueID      string `json:"venue_id" binding:"required,uuid"`
	Label        string `json:"label" binding:"required"`
	DisplayOrder int    `json:"display_order"`
	RentalOnly   bool   `json:"rental_only"`
}

// UpdateTimeSlotRequest is the payload for PATCH /v1/time-slots/:id.
type UpdateTimeSlotRequest struct {
	Label        *string `json:"label"`
	DisplayOrder *int    `json:"display_order"`
	RentalOnly   *bool   `json:"rental_only"`
}

// TimeSlotResponse is the API shape of a time slot.
type TimeSlotResponse struct {
	ID           string    `json:"id"`
	VenueID      string    `json:"venue_id"`
	Label        string    `json:"label"`
	DisplayOrder int       `json:"display_order"`
	RentalOnly   bool      `json:"rental_only"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewTimeSlotResponse(ts *timeslot.TimeSlot) TimeSlotResponse {
	return TimeSlotResponse{
		ID:           ts.ID,
		VenueID:      ts.VenueID,
		Label:        ts.Label,
		DisplayOrder: ts.DisplayOrder,
		RentalOnly:   ts.RentalOnly,
		CreatedAt:    ts.CreatedAt,
	}
}
