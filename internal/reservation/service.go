package reservation

import (
	"context"
	"errors"
	"time"

	"github.com/pickleclub/reservation-backend/internal/court"
	"github.com/pickleclub/reservation-backend/internal/member"
	"github.com/pickleclub/reservation-backend/internal/policy"
	"github.com/pickleclub/reservation-backend/internal/timeslot"
)

type JoinRequest struct {
	CourtID  string
	GameDate string
	TimeSlot string
	MemberID string
}

type CancelRequest struct {
	CourtID  string
	GameDate string
	TimeSlot string
	MemberID string
}

type Service interface {
	Join(ctx context.Context, req JoinRequest) (*Reservation, error)
	Cancel(ctx context.Context, req CancelRequest) error
	SlotBoard(ctx context.Context, venueID, gameDate, viewerID string) (*Board, error)
	ListMine(ctx context.Context, memberID string, page, pageSize int) ([]*Reservation, int, error)
}

type service struct {
	repo        Repository
	crtService  court.Service
	slotService timeslot.Service
	memService  member.Service
	now         func() time.Time
}

func NewService(repo Repository, crtService court.Service, slotService timeslot.Service, memService member.Service) Service {
	return NewServiceWithClock(repo, crtService, slotService, memService, time.Now)
}

// NewServiceWithClock injects the clock used for game-time and cancel
// deadline checks. Every decision samples it exactly once.
func NewServiceWithClock(repo Repository, crtService court.Service, slotService timeslot.Service, memService member.Service, now func() time.Time) Service {
	return &service{
		repo:        repo,
		crtService:  crtService,
		slotService: slotService,
		memService:  memService,
		now:         now,
	}
}

// Join adds a member to a slot roster, creating the roster on first join.
// Gates run in a fixed order and the first failure wins:
// court exists, court open, slot defined for the venue, member in good
// standing, roster below its waiting limit, game not started, rental
// restriction, not already joined.
func (s *service) Join(ctx context.Context, req JoinRequest) (*Reservation, error) {
	crt, err := s.crtService.GetByID(ctx, req.CourtID)
	if err != nil {
		return nil, err
	}
	if crt.Closed {
		return nil, ErrCourtClosed
	}

	slot, err := s.slotService.GetByLabel(ctx, crt.VenueID, req.TimeSlot)
	if err != nil {
		return nil, ErrInvalidSlot
	}

	m, err := s.memService.GetByID(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}
	if m.Suspended {
		return nil, member.ErrSuspended
	}

	now := s.now()

	res, err := s.repo.FindBySlot(ctx, req.CourtID, req.GameDate, req.TimeSlot)
	exists := err == nil
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	playerCount := 0
	if exists {
		playerCount = len(res.Players)
	}

	counts := policy.ComputeCounts(playerCount, crt.Capacity)
	if counts.IsWaitingFull {
		return nil, ErrCourtFull
	}

	if policy.IsPastSlot(req.TimeSlot, req.GameDate, now) {
		return nil, ErrGameTimePassed
	}

	rentalSlot := crt.IsRental() || slot.RentalOnly
	if policy.IsRentalRestricted(rentalSlot, m.AccountType) {
		return nil, ErrRentalNotAllowed
	}

	if exists && res.HasPlayer(req.MemberID) {
		return nil, ErrAlreadyReserved
	}

	if !exists {
		res = &Reservation{
			CourtID:   req.CourtID,
			CourtName: crt.Name,
			VenueID:   crt.VenueID,
			GameDate:  req.GameDate,
			TimeSlot:  req.TimeSlot,
		}
		if err := s.repo.Create(ctx, res); err != nil {
			return nil, err
		}
	}

	position, err := s.repo.AddPlayer(ctx, res.ID, req.MemberID)
	if err != nil {
		return nil, err
	}

	res.Players = append(res.Players, Player{
		MemberID: m.ID,
		Username: m.Username,
		Name:     m.Name,
		Position: position,
	})
	return res, nil
}

// Cancel removes the caller from a slot roster. An emptied roster is deleted
// so the slot reads as open again.
func (s *service) Cancel(ctx context.Context, req CancelRequest) error {
	res, err := s.repo.FindBySlot(ctx, req.CourtID, req.GameDate, req.TimeSlot)
	if err != nil {
		return err
	}

	if !res.HasPlayer(req.MemberID) {
		return ErrNotOwner
	}

	if policy.IsCancelDeadlinePassed(res.TimeSlot, res.GameDate, s.now()) {
		return ErrCancelDeadlinePassed
	}

	if err := s.repo.RemovePlayer(ctx, res.ID, req.MemberID); err != nil {
		return err
	}

	if len(res.Players) == 1 {
		return s.repo.Delete(ctx, res.ID)
	}
	return nil
}

// boardPageSize bounds the court and slot lists backing a board. A venue
// grid larger than this is not a realistic club.
const boardPageSize = 200

// SlotBoard resolves the availability grid of every open court at the venue
// against every slot defined for it, on the given date.
func (s *service) SlotBoard(ctx context.Context, venueID, gameDate, viewerID string) (*Board, error) {
	courts, _, err := s.crtService.List(ctx, court.Filter{VenueID: venueID, PageSize: boardPageSize})
	if err != nil {
		return nil, err
	}

	slots, _, err := s.slotService.List(ctx, timeslot.Filter{VenueID: venueID, PageSize: boardPageSize})
	if err != nil {
		return nil, err
	}

	reservations, err := s.repo.ListByVenueDate(ctx, venueID, gameDate)
	if err != nil {
		return nil, err
	}

	type key struct{ courtID, slot string }
	bySlot := make(map[key]*Reservation, len(reservations))
	for _, res := range reservations {
		bySlot[key{res.CourtID, res.TimeSlot}] = res
	}

	board := &Board{VenueID: venueID, GameDate: gameDate}
	for _, crt := range courts {
		if crt.Closed {
			continue
		}
		for _, slot := range slots {
			res, reserved := bySlot[key{crt.ID, slot.Label}]

			playerCount := 0
			mine := false
			if reserved {
				playerCount = len(res.Players)
				mine = res.HasPlayer(viewerID)
			}

			board.Cells = append(board.Cells, BoardCell{
				CourtID:  crt.ID,
				TimeSlot: slot.Label,
				Summary:  policy.ResolveSlotStatus(crt.Capacity, playerCount, reserved),
				Counts:   policy.ComputeCounts(playerCount, crt.Capacity),
				Mine:     mine,
			})
		}
	}
	return board, nil
}

// ListMine returns the member's reservations from today onward.
func (s *service) ListMine(ctx context.Context, memberID string, page, pageSize int) ([]*Reservation, int, error) {
	return s.repo.List(ctx, Filter{
		MemberID: memberID,
		FromDate: s.now().Format(policy.DateLayout),
		Page:     page,
		PageSize: pageSize,
	})
}
