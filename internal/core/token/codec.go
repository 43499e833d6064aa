// Package token issues and verifies the signed bearer tokens that carry a
// user's identity and role between requests.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stocktrack/inventory-api/internal/core/domain"
)

// Config holds the process-wide signing parameters. It is built once at
// startup and passed to NewCodec; the codec never reads ambient state.
type Config struct {
	// Secret keys the symmetric MAC. Must be non-empty.
	Secret string
	// Algorithm is the expected HMAC signing method (e.g. "HS256").
	// Tokens declaring any other algorithm are rejected outright.
	Algorithm string
	// TTL is the lifetime applied to issued tokens.
	TTL time.Duration
}

// Identity is the verified (subject, role) pair decoded from a token.
type Identity struct {
	Subject string
	Role    string
}

// Codec is a stateless signer/verifier. Safe for concurrent use.
type Codec struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

func NewCodec(cfg Config) (*Codec, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("token: secret must not be empty")
	}

	alg := cfg.Algorithm
	if alg == "" {
		alg = jwt.SigningMethodHS256.Alg()
	}
	method := jwt.GetSigningMethod(alg)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("token: unsupported signing algorithm %q", alg)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}

	return &Codec{secret: []byte(cfg.Secret), method: method, ttl: ttl}, nil
}

// Issue signs a token embedding the subject and role, valid for the
// configured TTL starting now.
func (c *Codec) Issue(subject, role string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(c.ttl).Unix(),
	}

	t := jwt.NewWithClaims(c.method, claims)
	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify checks the signature, algorithm, structure, and expiry of a token
// and returns the embedded identity. Every failure mode collapses to
// domain.ErrInvalidToken so callers cannot distinguish a forged token from
// an expired or malformed one.
func (c *Codec) Verify(tokenString string) (*Identity, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != c.method.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || role == "" {
		return nil, domain.ErrInvalidToken
	}

	// exp is required and the bound is inclusive: a token is dead the
	// moment the clock reaches its expiry.
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, domain.ErrInvalidToken
	}
	if !time.Now().Before(exp.Time) {
		return nil, domain.ErrInvalidToken
	}

	return &Identity{Subject: sub, Role: role}, nil
}
