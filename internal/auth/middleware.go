package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pickleclub/reservation-backend/internal/pkg/errcode"
	"github.com/pickleclub/reservation-backend/internal/pkg/response"
)

// AuthRequired is a Gin middleware that validates JWT from Authorization: Bearer <token>
func AuthRequired(jwtManager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{
				Code:    string(errcode.AccessDenied),
				Message: "missing Authorization header",
			})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{
				Code:    string(errcode.AccessDenied),
				Message: "invalid Authorization header format",
			})
			return
		}

		claims, err := jwtManager.ParseAndValidate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{
				Code:    string(errcode.AccessDenied),
				Message: "invalid or expired token",
			})
			return
		}

		// Store member info into Gin context for later handlers.
		c.Set(ctxMemberID, claims.MemberID)
		c.Set(ctxUsername, claims.Username)
		c.Set(ctxAccountType, claims.AccountType)

		c.Next()
	}
}
