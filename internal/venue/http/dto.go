package http

import (
	"time"

	"github.com/pickleclub/reservation-backend/internal/pkg/request"
	"github.com/pickleclub/reservation-backend/internal/venue"
)

// ListVenuesRequest defines query parameters for listing venues.
type ListVenuesRequest struct {
	request.ListParams
	Keyword string `form:"keyword"`
}

// CreateVenueRequest is the payload for POST /v1/venues.
type CreateVenueRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// UpdateVenueRequest is the payload for PATCH /v1/venues/:id.
type UpdateVenueRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

// VenueResponse is the API shape of a venue.
type VenueResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// VenueTag is a brief representation of a venue.
type VenueTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewVenueResponse(v *venue.Venue) VenueResponse {
	return VenueResponse{
		ID:        v.ID,
		Name:      v.Name,
		Address:   v.Address,
		Phone:     v.Phone,
		CreatedAt: v.CreatedAt,
	}
}
