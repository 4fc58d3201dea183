package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pickleclub/reservation-backend/internal/auth"
	"github.com/pickleclub/reservation-backend/internal/member"
	"github.com/pickleclub/reservation-backend/internal/pkg/apperror"
	"github.com/pickleclub/reservation-backend/internal/pkg/errcode"
	"github.com/pickleclub/reservation-backend/internal/pkg/response"
)

type Handler struct {
	service    member.Service
	jwtManager *auth.JWTManager
}

func NewHandler(service member.Service, jwtManager *auth.JWTManager) *Handler {
	return &Handler{
		service:    service,
		jwtManager: jwtManager,
	}
}

//
// POST /v1/auth/signup
//

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, errcode.ValidationError))
		return
	}

	m, err := h.service.Signup(c.Request.Context(), member.SignupRequest{
		Username:   req.Username,
		Password:   req.Password,
		Name:       req.Name,
		Level:      req.Level,
		DuprRating: req.DuprRating,
		Sex:        req.Sex,
		AgreeTerms: req.AgreeTerms,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, SignupResponse{Member: NewMemberResponse(m)})
}

//
// POST /v1/auth/login
//

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, errcode.ValidationError))
		return
	}

	m, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(m.ID, m.Username, m.AccountType)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		Member:      NewMemberResponse(m),
	})
}

//
// GET /v1/me
//

func (h *Handler) Me(c *gin.Context) {
	memberID := auth.GetMemberID(c)
	if memberID == "" {
		response.Error(c, apperror.New(http.StatusUnauthorized, errcode.AccessDenied))
		return
	}

	m, err := h.service.GetByID(c.Request.Context(), memberID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, MeResponse{Member: NewMemberResponse(m)})
}

func (h *Handler) List(c *gin.Context) {
	var req ListMembersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, errcode.ValidationError))
		return
	}
	req.Normalize()

	members, total, err := h.service.List(c.Request.Context(), member.Filter{
		Username:    req.Username,
		AccountType: req.AccountType,
		Suspended:   req.Suspended,
		Page:        req.Page,
		PageSize:    req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]MemberResponse, len(members))
	for i, m := range members {
		items[i] = NewMemberResponse(m)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, errcode.ValidationError))
		return
	}

	m, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewMemberResponse(m))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, errcode.ValidationError))
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, errcode.ValidationError))
		return
	}

	m, err := h.service.Update(c.Request.Context(), id, member.UpdateRequest{
		Name:       req.Name,
		Level:      req.Level,
		DuprRating: req.DuprRating,
		Sex:        req.Sex,
		Suspended:  req.Suspended,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewMemberResponse(m))
}
