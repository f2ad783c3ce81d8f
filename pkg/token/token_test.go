package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	s := NewSigner("secret", time.Hour, WithIssuer("rbac-admin"))
	signed, claims, err := s.Sign(42, "admin", []uint64{1, 2})
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)

	got, err := s.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), got.UserID)
	assert.Equal(t, "admin", got.Username)
	assert.Equal(t, []uint64{1, 2}, got.RoleIDs)
	assert.Equal(t, claims.ID, got.ID)
}

func TestSignIsUniqueWithinSameSecond(t *testing.T) {
	fixed := time.Unix(1700000000, 0)
	s := NewSigner("secret", time.Hour, WithClock(func() time.Time { return fixed }))
	a, _, err := s.Sign(1, "admin", nil)
	require.NoError(t, err)
	b, _, err := s.Sign(1, "admin", nil)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestParseRejects(t *testing.T) {
	now := time.Now()
	s := NewSigner("secret", time.Hour, WithIssuer("rbac-admin"))
	valid, _, err := s.Sign(1, "admin", nil)
	require.NoError(t, err)

	expired, _, err := NewSigner("secret", time.Hour, WithIssuer("rbac-admin"),
		WithClock(func() time.Time { return now.Add(-2 * time.Hour) })).Sign(1, "admin", nil)
	require.NoError(t, err)

	otherKey, _, err := NewSigner("other", time.Hour, WithIssuer("rbac-admin")).Sign(1, "admin", nil)
	require.NoError(t, err)

	otherIssuer, _, err := NewSigner("secret", time.Hour, WithIssuer("someone")).Sign(1, "admin", nil)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1, Username: "admin"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "rbac-admin",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "tampered", token: valid + "x"},
		{name: "expired", token: expired},
		{name: "other_key", token: otherKey},
		{name: "other_issuer", token: otherIssuer},
		{name: "alg_none", token: none},
		{name: "no_subject", token: noSubject},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Parse(tt.token)
			assert.True(t, errors.Is(err, ErrInvalidToken))
		})
	}
}
