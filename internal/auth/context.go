package auth

import "github.com/gin-gonic/gin"

const (
	ctxMemberID    = "memberID"
	ctxUsername    = "username"
	ctxAccountType = "accountType"
)

// GetMemberID returns the authenticated member's ID or empty string.
func GetMemberID(c *gin.Context) string {
	return getString(c, ctxMemberID)
}

// GetUsername returns the authenticated member's username or empty string.
func GetUsername(c *gin.Context) string {
	return getString(c, ctxUsername)
}

// GetAccountType returns the authenticated member's account type or empty string.
func GetAccountType(c *gin.Context) string {
	return getString(c, ctxAccountType)
}

func getString(c *gin.Context, key string) string {
	if v, ok := c.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
