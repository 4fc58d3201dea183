package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// DefaultExpirySkew invalidates a credential slightly before its server-side
// deadline so we never send a request the backend would reject moments later.
const DefaultExpirySkew = 30 * time.Second

// TokenExpiry decodes the payload segment of a bearer token and returns its
// exp claim as epoch seconds. This is a local inspection only: the signature
// is not verified. ok is false when the payload cannot be decoded or carries
// no numeric exp (a non-expiring or undecodable credential).
func TokenExpiry(token string) (int64, bool) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return 0, false
	}

	seg := strings.TrimRight(parts[1], "=")
	payload, err := base64.RawURLEncoding.DecodeString(seg)
	if err != nil {
		return 0, false
	}

	var claims struct {
		Exp *float64 `json:"exp"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil || claims.Exp == nil {
		return 0, false
	}

	return int64(*claims.Exp), true
}

// IsTokenExpired reports whether the token's embedded expiry has passed,
// allowing for skew. A token whose expiry cannot be determined is treated as
// not expired; rejecting it is the caller's (stricter) policy to apply.
func IsTokenExpired(token string, now time.Time, skew time.Duration) bool {
	exp, ok := TokenExpiry(token)
	if !ok {
		return false
	}
	return now.Unix() >= exp-int64(skew/time.Second)
}
