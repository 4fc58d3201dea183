package member

import (
	"net/http"
	"time"

	"github.com/pickleclub/reservation-backend/internal/pkg/apperror"
	"github.com/pickleclub/reservation-backend/internal/pkg/errcode"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, errcode.MemberNotFound)
	ErrUsernameExists     = apperror.New(http.StatusConflict, errcode.UsernameExists)
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, errcode.InvalidCredentials)
	ErrTermsRequired      = apperror.New(http.StatusBadRequest, errcode.TermsRequired)
	ErrSuspended          = apperror.New(http.StatusForbidden, errcode.MemberSuspended)
	ErrUsernameRequired   = apperror.WithMessage(http.StatusBadRequest, errcode.ValidationError, "username is required")
	ErrPasswordTooShort   = apperror.WithMessage(http.StatusBadRequest, errcode.ValidationError, "password is too short")
)

// AccountTypePartner marks operator accounts; anything else is a general member.
const (
	AccountTypePartner = "PARTNER"
	AccountTypeMember  = "MEMBER"
)

// Member represents a club member account.
type Member struct {
	ID           string // UUID
	Username     string
	PasswordHash string
	Name         string
	AccountType  string // PARTNER or MEMBER; unknown values are general members

	// Player profile, opaque to the policy engine.
	Level      *string // Skill level label, e.g. "intermediate"
	DuprRating *string // DUPR rating as entered, kept verbatim
	Sex        *string

	Suspended     bool
	AgreedTermsAt *time.Time
	CreatedAt     time.Time
	LastLoginAt   *time.Time
}

// Filter defines filter options for listing members.
type Filter struct {
	Username    string
	AccountType string
	Suspended   *bool // Pointer to distinguish false from not-set

	Page     int
	PageSize int
}
