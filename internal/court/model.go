package court

import (
	"net/http"
	"time"

	"github.com/pickleclub/reservation-backend/internal/pkg/apperror"
	"github.com/pickleclub/reservation-backend/internal/pkg/errcode"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, errcode.CourtNotFound)
	ErrNameRequired    = apperror.WithMessage(http.StatusBadRequest, errcode.ValidationError, "court name is required")
	ErrInvalidCapacity = apperror.WithMessage(http.StatusBadRequest, errcode.ValidationError, "capacity must be at least 1")
	ErrInvalidType     = apperror.WithMessage(http.StatusBadRequest, errcode.ValidationError, "court type must be general or rental")
	ErrInvalidVenue    = apperror.WithMessage(http.StatusBadRequest, errcode.ValidationError, "invalid venue_id")
)

// Court types. Rental courts are reservable only by partner accounts.
const (
	TypeGeneral = "general"
	TypeRental  = "rental"
)

// Court represents a bookable court at a venue.
type Court struct {
	ID        string
	VenueID   string
	Name      string
	Level     string // Skill level label for the court's sessions
	Capacity  int    // Confirmed player spots per time slot
	Type      string // general or rental
	Closed    bool   // Closed courts accept no reservations
	CreatedAt time.Time
}

// IsRental reports whether the court is reserved for partner rentals.
func (c *Court) IsRental() bool {
	return c.Type == TypeRental
}

// Filter defines parameters for listing courts.
type Filter struct {
	VenueID  string
	Type     string
	Closed   *bool
	Page     int
	PageSize int
}
