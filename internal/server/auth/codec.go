package auth

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/gophposts/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Codec issues HS256 tokens carrying a single subject.
type Codec struct {
	key SigningKey
}

func NewCodec(key SigningKey) *Codec {
	return &Codec{key: key}
}

// Issue returns a compact token with sub=subject, iat=now and exp=now+ttl.
// Claims have second precision, so ttl must be at least a second. The output
// is a pure function of the inputs and the key.
func (c *Codec) Issue(subject string, now time.Time, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", common.ErrMissingClaims
	}
	if ttl < time.Second {
		return "", common.ErrInvalidTTL
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})

	return token.SignedString(c.key.b)
}

// ExtractRaw strips the "Bearer " prefix from an authorization header value.
// The match is case-sensitive and an empty remainder counts as no token.
func ExtractRaw(headerValue string) (string, bool) {
	raw, ok := strings.CutPrefix(headerValue, common.BearerPrefix)
	if !ok || raw == "" {
		return "", false
	}
	return raw, true
}

// HeaderValue formats a token the way clients send it back.
func HeaderValue(token string) string {
	return common.BearerPrefix + token
}
