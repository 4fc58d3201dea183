package venue

import (
	"net/http"
	"time"

	"github.com/pickleclub/reservation-backend/internal/pkg/apperror"
	"github.com/pickleclub/reservation-backend/internal/pkg/errcode"
)

var (
	ErrNotFound     = apperror.WithMessage(http.StatusNotFound, errcode.InvalidRequestState, "venue not found")
	ErrNameRequired = apperror.WithMessage(http.StatusBadRequest, errcode.ValidationError, "venue name is required")
)

// Venue represents a partner business operating courts.
type Venue struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	OwnerID   string // Member holding the PARTNER account for this venue
	CreatedAt time.Time
}

// Filter defines parameters for listing venues.
type Filter struct {
	Keyword  string // Search in name or address
	OwnerID  string
	Page     int
	PageSize int
}
