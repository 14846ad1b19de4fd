package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lei40251/jsencrypt/pkg/rsakey"
)

func testKey(t *testing.T) *rsakey.Key {
	t.Helper()
	key, err := rsakey.Generate(1024, "")
	require.NoError(t, err)
	return key
}

func TestIssueAndVerify(t *testing.T) {
	key := testKey(t)
	issuer := NewIssuer(key, time.Hour)

	signed, err := issuer.Issue("alice", map[string]any{"role": "admin"})
	require.NoError(t, err)

	claims, err := issuer.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims["sub"])
	assert.Equal(t, "admin", claims["role"])
}

func TestIssueCarriesKidHeader(t *testing.T) {
	key := testKey(t)
	issuer := NewIssuer(key, time.Hour)

	signed, err := issuer.Issue("alice", nil)
	require.NoError(t, err)

	parsed, _, err := jwt.NewParser().ParseUnverified(signed, jwt.MapClaims{})
	require.NoError(t, err)
	assert.Equal(t, key.Fingerprint(), parsed.Header["kid"])
}

func TestExtraClaimsCannotOverrideSubject(t *testing.T) {
	issuer := NewIssuer(testKey(t), time.Hour)

	signed, err := issuer.Issue("alice", map[string]any{"sub": "mallory"})
	require.NoError(t, err)

	claims, err := issuer.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims["sub"])
}

func TestVerifyWithPublicHalf(t *testing.T) {
	key := testKey(t)
	signed, err := NewIssuer(key, time.Hour).Issue("alice", nil)
	require.NoError(t, err)

	verifier := NewIssuer(rsakey.FromPublic(key.Public()), time.Hour)
	claims, err := verifier.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims["sub"])

	_, err = verifier.Issue("bob", nil)
	assert.ErrorIs(t, err, rsakey.ErrPrivateKeyRequired)
}

func TestVerifyTamperedToken(t *testing.T) {
	issuer := NewIssuer(testKey(t), time.Hour)

	signed, err := issuer.Issue("alice", nil)
	require.NoError(t, err)

	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + ".eyJzdWIiOiJtYWxsb3J5In0." + parts[2]

	_, err = issuer.Verify(tampered)
	assert.Error(t, err)
}

func TestVerifyWrongKey(t *testing.T) {
	signed, err := NewIssuer(testKey(t), time.Hour).Issue("alice", nil)
	require.NoError(t, err)

	other := NewIssuer(testKey(t), time.Hour)
	_, err = other.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyExpiredToken(t *testing.T) {
	issuer := NewIssuer(testKey(t), time.Hour)

	// Issue with a negative lifetime by building the issuer directly.
	expired := &Issuer{key: issuer.key, ttl: -time.Hour}
	signed, err := expired.Issue("alice", nil)
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
