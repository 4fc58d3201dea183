package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pickleclub/reservation-backend/internal/auth"
	"github.com/pickleclub/reservation-backend/internal/member"
	"github.com/pickleclub/reservation-backend/internal/pkg/errcode"
	"github.com/pickleclub/reservation-backend/internal/pkg/response"
)

// RequirePartner ensures the authenticated member is a partner account.
// The account type is re-read from the database so a demotion takes effect
// immediately, not at token expiry. MUST run after auth.AuthRequired.
func RequirePartner(memberService member.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		memberID := auth.GetMemberID(c)
		if memberID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{
				Code:    string(errcode.AccessDenied),
				Message: "authentication required",
			})
			return
		}

		m, err := memberService.GetByID(c.Request.Context(), memberID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{
				Code:    string(errcode.MemberNotFound),
				Message: "member not found",
			})
			return
		}

		if !m.IsPartner() {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{
				Code:    string(errcode.AccessDenied),
				Message: "partner account required",
			})
			return
		}

		c.Next()
	}
}
