// Package session issues and verifies the signed, time-limited tokens that
// carry a user's identity in the session cookie.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for every verification failure: bad signature,
// malformed payload or expiry. Callers are not told which.
var ErrInvalidToken = errors.New("invalid session token")

// DefaultTTL is the lifetime of an issued token.
const DefaultTTL = time.Hour

func init() {
	// iat and exp keep milliseconds, so exp lands on issuance + TTL
	// instead of the whole second before it.
	jwt.TimePrecision = time.Millisecond
}

// Claims is the JWT payload of a session.
type Claims struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens with a process-wide HMAC secret.
type Codec struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*Codec)

// WithIssuer sets the "iss" claim and requires it on verification.
func WithIssuer(iss string) Option {
	return func(c *Codec) { c.issuer = iss }
}

// WithTTL overrides DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(c *Codec) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) { c.now = now }
}

func NewCodec(secret string, opts ...Option) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("session: empty signing secret")
	}
	c := &Codec{
		secret: []byte(secret),
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// TTL reports how long issued tokens stay valid.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token for the user. It expires exactly TTL after issuance.
func (c *Codec) Issue(userID, displayName string) (string, error) {
	now := c.now()
	claims := &Claims{
		UserID:   userID,
		UserName: displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry and returns the claims.
// A token is valid while now < exp.
func (c *Codec) Verify(tokenStr string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	}
	if c.issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Decode extracts claims WITHOUT checking the signature or expiry.
// The result must never be used for authorization.
func (c *Codec) Decode(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims); err != nil {
		return nil, fmt.Errorf("decode session token: %w", err)
	}
	return claims, nil
}
