package http

import (
	"time"

	"github.com/pickleclub/reservation-backend/internal/pkg/request"
	"github.com/pickleclub/reservation-backend/internal/reservation"
)

// JoinRequest is the payload for POST /v1/reservations.
type JoinRequest struct {
	CourtID  string `json:"court_id" binding:"required,uuid"`
	GameDate string `json:"game_date" binding:"required,datetime=2006-01-02"`
	TimeSlot string `json:"time_slot" binding:"required"`
}

// CancelRequest identifies the roster to leave, as query parameters on
// DELETE /v1/reservations.
type CancelRequest struct {
	CourtID  string `form:"court_id" binding:"required,uuid"`
	GameDate string `form:"game_date" binding:"required,datetime=2006-01-02"`
	TimeSlot string `form:"time_slot" binding:"required"`
}

// BoardRequest defines query parameters for GET /v1/board.
type BoardRequest struct {
	VenueID  string `form:"venue_id" binding:"required,uuid"`
	GameDate string `form:"date" binding:"required,datetime=2006-01-02"`
}

// ListMineRequest defines query parameters for GET /v1/reservations/mine.
type ListMineRequest struct {
	request.ListParams
}

// PlayerResponse is one roster entry, in join order.
type PlayerResponse struct {
	MemberID string `json:"member_id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// ReservationResponse is the API shape of a roster.
type ReservationResponse struct {
	ID        string           `json:"id"`
	CourtID   string           `json:"court_id"`
	CourtName string           `json:"court_name"`
	VenueID   string           `json:"venue_id"`
	GameDate  string           `json:"game_date"`
	TimeSlot  string           `json:"time_slot"`
	Players   []PlayerResponse `json:"players"`
	CreatedAt time.Time        `json:"created_at"`
}

// BoardCellResponse is one court/slot cell of the availability grid.
type BoardCellResponse struct {
	CourtID       string `json:"court_id"`
	TimeSlot      string `json:"time_slot"`
	Status        string `json:"status"`
	Count         int    `json:"count"`
	Capacity      int    `json:"capacity"`
	Confirmed     int    `json:"confirmed"`
	Waiting       int    `json:"waiting"`
	WaitingLimit  int    `json:"waiting_limit"`
	IsFull        bool   `json:"is_full"`
	IsWaitingFull bool   `json:"is_waiting_full"`
	Mine          bool   `json:"mine"`
}

// BoardResponse is the availability grid for one venue and date.
type BoardResponse struct {
	VenueID  string              `json:"venue_id"`
	GameDate string              `json:"game_date"`
	Cells    []BoardCellResponse `json:"cells"`
}

func NewReservationResponse(r *reservation.Reservation) ReservationResponse {
	players := make([]PlayerResponse, len(r.Players))
	for i, p := range r.Players {
		players[i] = PlayerResponse{
			MemberID: p.MemberID,
			Username: p.Username,
			Name:     p.Name,
			Position: p.Position,
		}
	}
	return ReservationResponse{
		ID:        r.ID,
		CourtID:   r.CourtID,
		CourtName: r.CourtName,
		VenueID:   r.VenueID,
		GameDate:  r.GameDate,
		TimeSlot:  r.TimeSlot,
		Players:   players,
		CreatedAt: r.CreatedAt,
	}
}

func NewBoardResponse(b *reservation.Board) BoardResponse {
	cells := make([]BoardCellResponse, len(b.Cells))
	for i, cell := range b.Cells {
		cells[i] = BoardCellResponse{
			CourtID:       cell.CourtID,
			TimeSlot:      cell.TimeSlot,
			Status:        string(cell.Summary.Status),
			Count:         cell.Summary.Count,
			Capacity:      cell.Summary.Capacity,
			Confirmed:     cell.Counts.Confirmed,
			Waiting:       cell.Counts.Waiting,
			WaitingLimit:  cell.Counts.WaitingLimit,
			IsFull:        cell.Counts.IsFull,
			IsWaitingFull: cell.Counts.IsWaitingFull,
			Mine:          cell.Mine,
		}
	}
	return BoardResponse{
		VenueID:  b.VenueID,
		GameDate: b.GameDate,
		Cells:    cells,
	}
}
