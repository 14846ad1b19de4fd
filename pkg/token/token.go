package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lei40251/jsencrypt/pkg/rsakey"
)

// DefaultTTL is the token lifetime used when no TTL is configured.
const DefaultTTL = 8 * time.Minute

// ErrInvalidClaims indicates the token parsed but its claims were not the
// expected shape.
var ErrInvalidClaims = errors.New("token: invalid claims")

// Issuer signs and verifies RS256 tokens with a managed RSA key. Issuing
// requires the private half; verification works with the public half
// alone.
type Issuer struct {
	key *rsakey.Key
	ttl time.Duration
}

// NewIssuer creates an issuer for the given key. A non-positive ttl means
// DefaultTTL.
func NewIssuer(key *rsakey.Key, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{key: key, ttl: ttl}
}

// Issue returns a signed token for subject. Extra claims are merged in;
// the registered sub, iat and exp claims cannot be overridden. The key
// fingerprint is carried in the kid header so verifiers can select the
// right public key.
func (i *Issuer) Issue(subject string, extra map[string]any) (string, error) {
	if !i.key.IsPrivate() {
		return "", rsakey.ErrPrivateKeyRequired
	}

	now := time.Now()
	claims := jwt.MapClaims{}
	for name, value := range extra {
		claims[name] = value
	}
	claims["sub"] = subject
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(i.ttl).Unix()

	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tok.Header["kid"] = i.key.Fingerprint()

	signed, err := tok.SignedString(i.key.Private())
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify parses tokenString, checks its signature against the issuer's
// public key and validates the registered claims (including expiry).
func (i *Issuer) Verify(tokenString string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(tokenString, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return i.key.Public(), nil
	}, jwt.WithValidMethods([]string{"RS256"}))
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}
