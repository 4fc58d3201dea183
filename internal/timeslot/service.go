package timeslot

import (
	"context"
	"strings"

	"github.com/pickleclub/reservation-backend/internal/policy"
)

type CreateRequest struct {
	VenueID      string
	Label        string
	DisplayOrder int
	RentalOnly   bool
}

type UpdateRequest struct {
	Label        *string
	DisplayOrder *int
	RentalOnly   *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*TimeSlot, error)
	GetByID(ctx context.Context, id string) (*TimeSlot, error)
	GetByLabel(ctx context.Context, venueID, label string) (*TimeSlot, error)
	List(ctx context.Context, filter Filter) ([]*TimeSlot, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*TimeSlot, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// validLabel checks that a label has the "HH:MM~HH:MM" shape, with both
// halves parseable as clock times.
func validLabel(label string) bool {
	parts := strings.Split(label, policy.SlotSeparator)
	if len(parts) != 2 {
		return false
	}
	for _, part := range parts {
		if _, ok := policy.ParseSlotStart(part); !ok {
			return false
		}
	}
	return true
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*TimeSlot, error) {
	if req.VenueID == "" {
		return nil, ErrVenueRequired
	}
	label := strings.TrimSpace(req.Label)
	if !validLabel(label) {
		return nil, ErrInvalidLabel
	}

	if existing, err := s.repo.GetByLabel(ctx, req.VenueID, label); err == nil && existing != nil {
		return nil, ErrLabelExists
	}

	ts := &TimeSlot{
		VenueID:      req.VenueID,
		Label:        label,
		DisplayOrder: req.DisplayOrder,
		RentalOnly:   req.RentalOnly,
	}

	if err := s.repo.Create(ctx, ts); err != nil {
		return nil, err
	}
	return ts, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*TimeSlot, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByLabel(ctx context.Context, venueID, label string) (*TimeSlot, error) {
	return s.repo.GetByLabel(ctx, venueID, label)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*TimeSlot, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*TimeSlot, error) {
	ts, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Label != nil {
		label := strings.TrimSpace(*req.Label)
		if !validLabel(label) {
			return nil, ErrInvalidLabel
		}
		ts.Label = label
	}
	if req.DisplayOrder != nil {
		ts.DisplayOrder = *req.DisplayOrder
	}
	if req.RentalOnly != nil {
		ts.RentalOnly = *req.RentalOnly
	}

	if err := s.repo.Update(ctx, ts); err != nil {
		return nil, err
	}
	return ts, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
