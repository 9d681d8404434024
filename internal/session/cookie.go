package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidCookie = errors.New("invalid session cookie")

type cookieClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// CookieCodec signs session ids into cookie values so visitors cannot pick
// another visitor's session id.
type CookieCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewCookieCodec(secret string, ttl time.Duration) *CookieCodec {
	return &CookieCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (c *CookieCodec) Encode(sessionID string) (string, error) {
	now := c.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, cookieClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	})

	value, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session cookie: %w", err)
	}
	return value, nil
}

func (c *CookieCodec) Decode(value string) (string, error) {
	var claims cookieClaims
	token, err := jwt.ParseWithClaims(value, &claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidCookie, err)
	}
	if claims.SessionID == "" {
		return "", fmt.Errorf("%w: missing sid", ErrInvalidCookie)
	}
	return claims.SessionID, nil
}
