package member

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pickleclub/reservation-backend/internal/auth"
	"github.com/pickleclub/reservation-backend/internal/policy"
)

type SignupRequest struct {
	Username   string
	Password   string
	Name       string
	Level      string
	DuprRating string
	Sex        string
	AgreeTerms bool
}

type UpdateRequest struct {
	Name       *string
	Level      *string
	DuprRating *string
	Sex        *string
	Suspended  *bool
}

// Service defines business logic related to member accounts.
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (*Member, error)
	Login(ctx context.Context, username, password string) (*Member, error)
	GetByID(ctx context.Context, id string) (*Member, error)
	List(ctx context.Context, filter Filter) ([]*Member, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Member, error)
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher

	minPasswordLength int
}

// NewService creates a new member Service.
func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:              repo,
		hasher:            hasher,
		minPasswordLength: 8,
	}
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (*Member, error) {
	username := normalizeUsername(req.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if len(req.Password) < s.minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	// Signup requires agreeing to the club terms.
	if !req.AgreeTerms {
		return nil, ErrTermsRequired
	}

	// Check if username is already taken.
	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameExists
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	m := &Member{
		Username:      username,
		PasswordHash:  hash,
		Name:          strings.TrimSpace(req.Name),
		AccountType:   AccountTypeMember,
		Level:         optional(req.Level),
		DuprRating:    optional(req.DuprRating),
		Sex:           optional(req.Sex),
		AgreedTermsAt: &now,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

func (s *service) Login(ctx context.Context, username, password string) (*Member, error) {
	username = normalizeUsername(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, ErrInvalidCredentials
	}

	m, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch member by username: %w", err)
	}

	if err := s.hasher.Compare(m.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Update last_login_at (best effort; do not fail login if update fails).
	_ = s.repo.UpdateLastLogin(ctx, m.ID, time.Now().UTC())

	return m, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Member, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Member, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Member, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		m.Name = strings.TrimSpace(*req.Name)
	}
	if req.Level != nil {
		m.Level = optional(*req.Level)
	}
	if req.DuprRating != nil {
		m.DuprRating = optional(*req.DuprRating)
	}
	if req.Sex != nil {
		m.Sex = optional(*req.Sex)
	}
	if req.Suspended != nil {
		m.Suspended = *req.Suspended
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// IsPartner reports whether the member holds an operator account.
func (m *Member) IsPartner() bool {
	return policy.IsPartnerAccount(m.AccountType)
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
