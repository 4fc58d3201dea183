package http

import (
	"time"

	"github.com/pickleclub/reservation-backend/internal/member"
	"github.com/pickleclub/reservation-backend/internal/pkg/request"
)

// SignupRequest defines the payload for member signup.
type SignupRequest struct {
	Username   string `json:"username" binding:"required,min=3,max=30"`
	Password   string `json:"password" binding:"required,min=8"`
	Name       string `json:"name" binding:"required"`
	Level      string `json:"level"`
	DuprRating string `json:"dupr_rating"`
	Sex        string `json:"sex"`
	AgreeTerms bool   `json:"agree_terms"`
}

// LoginRequest defines the payload for member login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateMemberRequest defines the payload for PATCH /members/:id.
type UpdateMemberRequest struct {
	Name       *string `json:"name"`
	Level      *string `json:"level"`
	DuprRating *string `json:"dupr_rating"`
	Sex        *string `json:"sex"`
	Suspended  *bool   `json:"suspended"`
}

// ListMembersRequest defines query parameters for listing members.
type ListMembersRequest struct {
	request.ListParams
	Username    string `form:"username"`
	AccountType string `form:"account_type" binding:"omitempty,oneof=PARTNER MEMBER"`
	Suspended   *bool  `form:"suspended"`
}

// MemberResponse is the shape of member data returned in API responses.
type MemberResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Name        string     `json:"name"`
	AccountType string     `json:"account_type"`
	Level       *string    `json:"level,omitempty"`
	DuprRating  *string    `json:"dupr_rating,omitempty"`
	Sex         *string    `json:"sex,omitempty"`
	Suspended   bool       `json:"suspended"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// MemberTag is a brief representation of a member.
type MemberTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LoginResponse is the response for POST /v1/auth/login.
type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	Member      MemberResponse `json:"member"`
}

// SignupResponse is the response for POST /v1/auth/signup.
type SignupResponse struct {
	Member MemberResponse `json:"member"`
}

// MeResponse is the response for GET /v1/me.
type MeResponse struct {
	Member MemberResponse `json:"member"`
}

// NewMemberResponse converts a domain member to its API shape.
func NewMemberResponse(m *member.Member) MemberResponse {
	return MemberResponse{
		ID:          m.ID,
		Username:    m.Username,
		Name:        m.Name,
		AccountType: m.AccountType,
		Level:       m.Level,
		DuprRating:  m.DuprRating,
		Sex:         m.Sex,
		Suspended:   m.Suspended,
		CreatedAt:   m.CreatedAt,
		LastLoginAt: m.LastLoginAt,
	}
}
