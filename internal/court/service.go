package court

import (
	"context"
	"strings"

	"github.com/pickleclub/reservation-backend/internal/venue"
)

type CreateRequest struct {
	VenueID  string
	Name     string
	Level    string
	Capacity int
	Type     string
}

type UpdateRequest struct {
	Name     *string
	Level    *string
	Capacity *int
	Type     *string
	Closed   *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Court, error)
	GetByID(ctx context.Context, id string) (*Court, error)
	List(ctx context.Context, filter Filter) ([]*Court, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Court, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo       Repository
	venService venue.Service
}

func NewService(repo Repository, venService venue.Service) Service {
	return &service{
		repo:       repo,
		venService: venService,
	}
}

func validType(t string) bool {
	return t == TypeGeneral || t == TypeRental
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Court, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if req.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	courtType := req.Type
	if courtType == "" {
		courtType = TypeGeneral
	}
	if !validType(courtType) {
		return nil, ErrInvalidType
	}

	// Validation: the venue must exist.
	if _, err := s.venService.GetByID(ctx, req.VenueID); err != nil {
		return nil, ErrInvalidVenue
	}

	c := &Court{
		VenueID:  req.VenueID,
		Name:     strings.TrimSpace(req.Name),
		Level:    req.Level,
		Capacity: req.Capacity,
		Type:     courtType,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Court, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Court, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Court, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.Level != nil {
		c.Level = *req.Level
	}
	if req.Capacity != nil {
		if *req.Capacity < 1 {
			return nil, ErrInvalidCapacity
		}
		c.Capacity = *req.Capacity
	}
	if req.Type != nil {
		if !validType(*req.Type) {
			return nil, ErrInvalidType
		}
		c.Type = *req.Type
	}
	if req.Closed != nil {
		c.Closed = *req.Closed
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
