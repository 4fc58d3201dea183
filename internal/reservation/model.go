package reservation

import (
	"net/http"
	"time"

	"github.com/pickleclub/reservation-backend/internal/pkg/apperror"
	"github.com/pickleclub/reservation-backend/internal/pkg/errcode"
	"github.com/pickleclub/reservation-backend/internal/policy"
)

var (
	ErrNotFound             = apperror.New(http.StatusNotFound, errcode.ReservationNotFound)
	ErrCourtFull            = apperror.New(http.StatusConflict, errcode.CourtFull)
	ErrGameTimePassed       = apperror.New(http.StatusBadRequest, errcode.GameTimePassed)
	ErrRentalNotAllowed     = apperror.New(http.StatusForbidden, errcode.RentalNotAllowed)
	ErrAlreadyReserved      = apperror.New(http.StatusConflict, errcode.AlreadyReserved)
	ErrCancelDeadlinePassed = apperror.New(http.StatusBadRequest, errcode.CancelDeadlinePassed)
	ErrNotOwner             = apperror.New(http.StatusForbidden, errcode.NotOwner)
	ErrCourtClosed          = apperror.New(http.StatusConflict, errcode.CourtClosed)
	ErrInvalidSlot          = apperror.New(http.StatusBadRequest, errcode.InvalidTimeSlot)
)

// Player is one roster entry. Position is assigned at join time and never
// reused: roster order decides who holds a confirmed spot and who waits.
type Player struct {
	MemberID string
	Username string
	Name     string
	Position int
}

// Reservation is the single roster for a (court, game date, time slot)
// triple. It exists only while at least one player is joined.
type Reservation struct {
	ID        string
	CourtID   string
	CourtName string
	VenueID   string
	GameDate  string // formatted as policy.DateLayout
	TimeSlot  string // formatted as "HH:MM~HH:MM"
	Players   []Player
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPlayer reports whether the member is on the roster.
func (r *Reservation) HasPlayer(memberID string) bool {
	for _, p := range r.Players {
		if p.MemberID == memberID {
			return true
		}
	}
	return false
}

// Filter defines parameters for listing reservations.
type Filter struct {
	MemberID string
	CourtID  string
	VenueID  string
	GameDate string
	FromDate string // Inclusive lower bound on game date
	Page     int
	PageSize int
}

// BoardCell is the resolved state of one court at one time slot.
type BoardCell struct {
	CourtID  string
	TimeSlot string
	Summary  policy.SlotSummary
	Counts   policy.Counts
	Mine     bool // Viewer is on the roster
}

// Board is the full availability grid for a venue on one date.
type Board struct {
	VenueID  string
	GameDate string
	Cells    []BoardCell
}
