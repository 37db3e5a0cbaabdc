package token

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long an issued token stays valid.
const DefaultTTL = time.Hour

// ErrInvalidToken covers every verification failure: bad signature,
// malformed input, or expiry. Callers are not told which.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the authenticated user's identifier and nothing else.
type Claims struct {
	jwt.RegisteredClaims
	ID string `json:"id"`
}

// Config holds the signing secret and token lifetime. DefaultSecret is set
// when JWT_SECRET was absent and the built-in development secret is in use,
// so startup can warn: with the default secret every token is forgeable.
type Config struct {
	Secret        []byte
	TTL           time.Duration
	DefaultSecret bool
}

// ConfigFromEnv reads JWT_SECRET and TOKEN_TTL from the environment.
func ConfigFromEnv() Config {
	secret := os.Getenv("JWT_SECRET")
	defaulted := secret == ""
	if defaulted {
		secret = "cats-dev-secret"
	}
	ttl := DefaultTTL
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			ttl = d
		}
	}
	return Config{Secret: []byte(secret), TTL: ttl, DefaultSecret: defaulted}
}

// Issuer mints and verifies HS256 bearer tokens with a process-wide secret.
// The secret is read-only after construction.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(cfg Config) *Issuer {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: cfg.Secret, ttl: ttl}
}

// Issue signs a token embedding the user id, expiring after the configured TTL.
func (i *Issuer) Issue(userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		ID: userID,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(i.secret)
}

// Verify parses and validates a token, returning the embedded user id.
// Any failure maps to ErrInvalidToken.
func (i *Issuer) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	return claims.ID, nil
}
