package notice

import (
	"net/http"
	"time"

	"github.com/pickleclub/reservation-backend/internal/pkg/apperror"
	"github.com/pickleclub/reservation-backend/internal/pkg/errcode"
)

var (
	ErrNotFound        = apperror.WithMessage(http.StatusNotFound, errcode.InvalidRequestState, "notice not found")
	ErrTitleRequired   = apperror.WithMessage(http.StatusBadRequest, errcode.ValidationError, "title is required")
	ErrContentRequired = apperror.WithMessage(http.StatusBadRequest, errcode.ValidationError, "content is required")
	ErrVenueRequired   = apperror.WithMessage(http.StatusBadRequest, errcode.ValidationError, "venue_id is required")
)

// Notice is a venue announcement shown to members.
type Notice struct {
	ID        string
	VenueID   string
	Title     string
	Content   string
	Pinned    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter defines parameters for listing notices.
type Filter struct {
	VenueID  string
	Keyword  string
	Page     int
	PageSize int
}
