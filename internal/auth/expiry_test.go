package auth

import (
	"encoding/base64"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeToken builds an unsigned JWT-shaped string with the given payload JSON.
func fakeToken(payload string) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	body := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return header + "." + body + ".signature"
}

func TestTokenExpiry(t *testing.T) {
	exp, ok := TokenExpiry(fakeToken(`{"exp":1770000000}`))
	require.True(t, ok)
	require.Equal(t, int64(1770000000), exp)

	// Fractional exp values truncate to whole seconds.
	exp, ok = TokenExpiry(fakeToken(`{"exp":1770000000.75}`))
	require.True(t, ok)
	require.Equal(t, int64(1770000000), exp)
}

func TestTokenExpiry_Undecodable(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"no separator", "justonesegment"},
		{"payload not base64", "head.###.sig"},
		{"payload not json", fakeToken("not-json")},
		{"no exp claim", fakeToken(`{"sub":"abc"}`)},
		{"exp not numeric", fakeToken(`{"exp":"tomorrow"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := TokenExpiry(tt.token)
			require.False(t, ok)
		})
	}
}

func TestTokenExpiry_ToleratesPadding(t *testing.T) {
	// Some encoders pad the payload segment; the decoder must accept it.
	payload := base64.URLEncoding.EncodeToString([]byte(`{"exp":1770000000}`))
	token := "head." + payload + ".sig"

	exp, ok := TokenExpiry(token)
	require.True(t, ok)
	require.Equal(t, int64(1770000000), exp)
}

func TestIsTokenExpired(t *testing.T) {
	now := time.Unix(1770000000, 0)
	token := func(offset int64) string {
		return fakeToken(fmt.Sprintf(`{"exp":%d}`, now.Unix()+offset))
	}

	tests := []struct {
		name   string
		token  string
		want   bool
	}{
		{"expires well in the future", token(3600), false},
		{"just outside the skew window", token(31), false},
		{"inside the skew window", token(30), true},
		{"exactly now", token(0), true},
		{"already expired", token(-60), true},
		{"undecodable fails open", "garbage", false},
		{"non-expiring token", fakeToken(`{"sub":"abc"}`), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsTokenExpired(tt.token, now, DefaultExpirySkew))
		})
	}
}

func TestIsTokenExpired_ZeroSkew(t *testing.T) {
	now := time.Unix(1770000000, 0)
	token := fakeToken(fmt.Sprintf(`{"exp":%d}`, now.Unix()+10))

	require.False(t, IsTokenExpired(token, now, 0))
	require.True(t, IsTokenExpired(token, now.Add(10*time.Second), 0))
}
