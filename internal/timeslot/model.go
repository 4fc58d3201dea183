package timeslot

import (
	"net/http"
	"time"

	"github.com/pickleclub/reservation-backend/internal/pkg/apperror"
	"github.com/pickleclub/reservation-backend/internal/pkg/errcode"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, errcode.InvalidTimeSlot)
	ErrInvalidLabel  = apperror.WithMessage(http.StatusBadRequest, errcode.InvalidTimeSlot, "time slot label must look like 08:00~10:00")
	ErrVenueRequired = apperror.WithMessage(http.StatusBadRequest, errcode.ValidationError, "venue_id is required")
	ErrLabelExists   = apperror.WithMessage(http.StatusConflict, errcode.InvalidRequestState, "time slot already defined for this venue")
)

// TimeSlot is a reservable window at a venue, labeled "HH:MM~HH:MM".
type TimeSlot struct {
	ID           string
	VenueID      string
	Label        string
	DisplayOrder int
	RentalOnly   bool // Reservable only by partner accounts
	CreatedAt    time.Time
}

// Filter defines parameters for listing time slots.
type Filter struct {
	VenueID  string
	Page     int
	PageSize int
}
