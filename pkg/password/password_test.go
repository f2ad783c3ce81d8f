package password

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hashed, err := Hash("Admin123!", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "Admin123!", hashed)
	assert.NoError(t, Compare(hashed, "Admin123!"))
	assert.True(t, errors.Is(Compare(hashed, "admin123!"), ErrMismatch))
	assert.Error(t, Compare("not-a-hash", "x"))
}

func TestGenerate(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		p, err := Generate(12)
		require.NoError(t, err)
		assert.Len(t, p, 12)
		assert.True(t, strings.ContainsAny(p, lower))
		assert.True(t, strings.ContainsAny(p, upper))
		assert.True(t, strings.ContainsAny(p, digits))
		assert.True(t, strings.ContainsAny(p, symbols))
		seen[p] = struct{}{}
	}
	assert.Len(t, seen, 50)

	short, err := Generate(3)
	require.NoError(t, err)
	assert.Len(t, short, MinLength)
}
